package osc

const zero = string(byte(0))

// nulls returns a string of `i` nulls.
func nulls(i int) string {
	s := ""
	for j := 0; j < i; j++ {
		s += zero
	}
	return s
}

type testCase struct {
	name    string
	raw     []byte
	obj     *Message
	wantErr bool
}

// messageTestCases hold single well formed messages; raw is the exact
// wire image and obj the decoded form. Used by the marshal, packet and
// fuzz tests.
var messageTestCases = []testCase{
	{
		"no arguments",
		[]byte("/obs/go" + zero + "," + nulls(3)),
		&Message{Address: "/obs/go"},
		false,
	},
	{
		"float argument",
		[]byte("/obs/transition/start" + nulls(3) + ",f" + nulls(2) + "\x3f\x80\x00\x00"),
		&Message{Address: "/obs/transition/start", Arguments: []interface{}{float32(1.0)}},
		false,
	},
	{
		"int argument",
		[]byte("/obs/transition/duration" + nulls(4) + ",i" + nulls(2) + "\x00\x00\x01\x90"),
		&Message{Address: "/obs/transition/duration", Arguments: []interface{}{int32(400)}},
		false,
	},
	{
		"string and float arguments",
		[]byte("/obs/source/volume" + nulls(2) + ",sf" + zero + "Mic" + zero + "\x3f\x40\x00\x00"),
		&Message{Address: "/obs/source/volume", Arguments: []interface{}{"Mic", float32(0.75)}},
		false,
	},
	{
		"two int arguments",
		[]byte("/fader" + nulls(2) + ",ii" + zero + "\x00\x00\x04\x62\x00\x00\x0d\x0c"),
		&Message{Address: "/fader", Arguments: []interface{}{int32(1122), int32(3340)}},
		false,
	},
}
