package osc

import (
	"fmt"
)

////
// De/Encoding helpers
////

// nextZero returns the index of the first zero byte at or after start.
// If the buffer holds no zero byte past start, len(data) is returned;
// callers treat that as a truncated field.
func nextZero(data []byte, start int) int {
	for i := start; i < len(data); i++ {
		if data[i] == 0 {
			return i
		}
	}
	return len(data)
}

// nextAligned returns the smallest multiple of 4 strictly greater than i.
// Every OSC string field is padded with at least one zero byte out to a
// 4 byte boundary, so a field following a string that begins on an aligned
// offset always begins at nextAligned of the terminator index.
func nextAligned(i int) int {
	return 4*(i/4) + 4
}

// stringAt reads a zero terminated string beginning at start. It returns
// the string and the index of its terminator.
func stringAt(data []byte, start int) (string, int, error) {
	zi := nextZero(data, start)
	if zi >= len(data) {
		return "", zi, fmt.Errorf("stringAt: string at %d extends past packet end", start)
	}
	return string(data[start:zi]), zi, nil
}

// appendPaddedString appends str to b as a zero terminated, 4 byte padded
// OSC string and returns the extended slice.
func appendPaddedString(b []byte, str string) []byte {
	b = append(b, str...)
	n := len(str) + 1
	for i := 0; i < 1+padBytesNeeded(n); i++ {
		b = append(b, 0)
	}
	return b
}

// padBytesNeeded determines how many bytes are needed to fill up to the
// next 4 byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}
