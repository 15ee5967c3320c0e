package osc

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"math"
)

// Message represents a single OSC message. An OSC message consists of an
// OSC address pattern and zero or more arguments. Argument order is
// significant; the supported argument types are float32, int32 and string.
type Message struct {
	Address   string
	Arguments []interface{}
}

// Verify that Message implements the BinaryMarshaler interface.
var _ encoding.BinaryMarshaler = (*Message)(nil)

// NewMessage returns a new Message. The address parameter is the OSC address.
func NewMessage(addr string, args ...interface{}) *Message {
	return &Message{Address: addr, Arguments: args}
}

// Append appends the given arguments to the arguments list.
// Unsupported argument types are rejected.
func (m *Message) Append(args ...interface{}) error {
	for _, a := range args {
		if ToTypeTag(a) == TypeInvalid {
			return fmt.Errorf("Append: unsupported type: %T", a)
		}
	}
	m.Arguments = append(m.Arguments, args...)
	return nil
}

// TypeTags returns the type tag string, including the leading ','.
func (m *Message) TypeTags() (string, error) {
	tags := make([]byte, 0, len(m.Arguments)+1)
	tags = append(tags, ',')
	for _, arg := range m.Arguments {
		t := ToTypeTag(arg)
		if t == TypeInvalid {
			return "", fmt.Errorf("TypeTags: unsupported type: %T", arg)
		}
		tags = append(tags, byte(t))
	}
	return string(tags), nil
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	tags, _ := m.TypeTags()
	s := m.Address + " " + tags
	for _, arg := range m.Arguments {
		s += fmt.Sprintf(" %v", arg)
	}
	return s
}

// MarshalBinary serializes the OSC message to a byte buffer with the
// following format:
// 1. OSC Address Pattern
// 2. OSC Type Tag String
// 3. OSC Arguments
func (m *Message) MarshalBinary() ([]byte, error) {
	tags, err := m.TypeTags()
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, MaxPacketSize)
	data = appendPaddedString(data, m.Address)
	data = appendPaddedString(data, tags)

	for _, arg := range m.Arguments {
		switch t := arg.(type) {
		case float32:
			data = binary.BigEndian.AppendUint32(data, math.Float32bits(t))
		case int32:
			data = binary.BigEndian.AppendUint32(data, uint32(t))
		case string:
			data = appendPaddedString(data, t)
		}
	}

	if len(data) > MaxPacketSize {
		return nil, fmt.Errorf("MarshalBinary: packet too large: %d", len(data))
	}
	return data, nil
}
