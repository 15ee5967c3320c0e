package osc

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// MaxPacketSize is the read buffer bound for a single datagram. Control
// surfaces keep OSC packets small (TouchOSC style senders stay under 256
// bytes); anything longer is truncated at the socket.
const MaxPacketSize = 512

// ParsePacket scans one datagram for back to back OSC messages. Messages
// are returned in wire order. The scan is lenient: a malformed message
// ends the scan at that point and the remaining bytes are discarded, but
// every message decoded before it is still returned. The error, when non
// nil, describes why the scan stopped early and is diagnostic only.
func ParsePacket(data []byte) ([]*Message, error) {
	var msgs []*Message
	for i := 0; i >= 0 && i < len(data); {
		msg, next, err := parseMessage(data, i)
		if msg != nil {
			msgs = append(msgs, msg)
		}
		if err != nil {
			return msgs, err
		}
		i = next
	}
	return msgs, nil
}

// parseMessage decodes the single message beginning at offset si. It
// returns the decoded message and the offset of the next message in the
// packet. A negative next offset means the rest of the packet must not be
// scanned; the returned message, when non nil, is still valid and must
// still be dispatched.
func parseMessage(data []byte, si int) (msg *Message, next int, err error) {
	zi := nextZero(data, si)

	// The address string must terminate with room for a 4 byte type tag
	// block after it, otherwise there is no complete message here.
	if zi+4 >= len(data) {
		return nil, -1, fmt.Errorf("parseMessage: no room for message at %d", si)
	}

	addr := string(data[si:zi])
	if !strings.HasPrefix(addr, "/") {
		return nil, -1, fmt.Errorf("parseMessage: address %q does not begin with '/'", addr)
	}

	// ti is where the type tag string begins, di is where the argument
	// block begins. Both are 4 byte aligned.
	ti := si + nextAligned(len(addr))
	di := nextAligned(nextZero(data, ti))

	msg = &Message{Address: addr}

	// No room for even one argument: the message ends here with an empty
	// argument list. Its end offset cannot be told apart from a short
	// write, so the packet scan ends with it.
	if di+4 > len(data) {
		return msg, -1, nil
	}

	// Skip the conventional leading ',' if the sender included one.
	if data[ti] == ',' {
		ti++
	}

	next = di
	for next+4 <= len(data) {
		tag := data[ti]
		if tag == 0 {
			break
		}

		switch TypeTag(tag) {
		case TypeFloat32:
			bits := binary.BigEndian.Uint32(data[next:])
			msg.Arguments = append(msg.Arguments, math.Float32frombits(bits))
			next += 4

		case TypeInt32:
			msg.Arguments = append(msg.Arguments, int32(binary.BigEndian.Uint32(data[next:])))
			next += 4

		case TypeString:
			s, zi, err := stringAt(data, next)
			if err != nil {
				// Unterminated string argument: keep what was decoded so
				// far and end the packet scan.
				return msg, -1, nil
			}
			msg.Arguments = append(msg.Arguments, s)
			next = nextAligned(zi)

		default:
			// Unrecognized tag, so the length of this and any following
			// argument is unknown. Keep the arguments decoded so far and
			// end the packet scan.
			return msg, -1, nil
		}
		ti++
	}

	return msg, next, nil
}
