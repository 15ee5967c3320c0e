package osc

import (
	"reflect"
	"testing"
)

func TestParsePacket(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePacket(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePacket() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if len(got) != 1 || !reflect.DeepEqual(got[0], tt.obj) {
				t.Errorf("ParsePacket() got = %v, want [%v]", got, tt.obj)
			}
		})
	}
}

func TestParsePacketRoundTrip(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := tt.obj.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary() error = %v", err)
			}
			got, err := ParsePacket(raw)
			if err != nil {
				t.Fatalf("ParsePacket() error = %v", err)
			}
			if len(got) != 1 || !reflect.DeepEqual(got[0], tt.obj) {
				t.Errorf("round trip got = %v, want [%v]", got, tt.obj)
			}
		})
	}
}

func TestParsePacketMultipleMessages(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want []*Message
	}{
		{
			"two zero argument messages",
			append(append([]byte{}, messageTestCases[0].raw...), messageTestCases[0].raw...),
			[]*Message{{Address: "/obs/go"}, {Address: "/obs/go"}},
		},
		{
			"int argument message followed by another message",
			append(append([]byte{}, messageTestCases[2].raw...), messageTestCases[0].raw...),
			[]*Message{messageTestCases[2].obj, {Address: "/obs/go"}},
		},
		{
			"string argument message followed by another message",
			append(append([]byte{}, messageTestCases[3].raw...), messageTestCases[1].raw...),
			[]*Message{messageTestCases[3].obj, messageTestCases[1].obj},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePacket(tt.raw)
			if err != nil {
				t.Fatalf("ParsePacket() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePacket() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePacketStopsScanning(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		want    []*Message
		wantErr bool
	}{
		{
			"unterminated string argument keeps earlier messages",
			append(append([]byte{}, messageTestCases[0].raw...),
				[]byte("/a"+nulls(2)+",s"+nulls(2)+"XYZA")...),
			[]*Message{{Address: "/obs/go"}, {Address: "/a"}},
			false,
		},
		{
			"unrecognized type tag ends the scan",
			append(append([]byte{}, messageTestCases[1].raw...),
				[]byte("/a"+nulls(2)+",fb"+zero+"\x3f\x80\x00\x00\x00\x00\x00\x04")...),
			[]*Message{messageTestCases[1].obj, {Address: "/a", Arguments: []interface{}{float32(1.0)}}},
			false,
		},
		{
			"address without leading slash ends the scan",
			append(append([]byte{}, messageTestCases[0].raw...),
				[]byte("bogus"+nulls(3)+","+nulls(3))...),
			[]*Message{{Address: "/obs/go"}},
			true,
		},
		{
			"address truncated at packet end",
			[]byte("/obs/go" + zero),
			nil,
			true,
		},
		{
			"empty packet",
			nil,
			nil,
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePacket(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePacket() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePacket() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func FuzzParsePacket(f *testing.F) {
	for _, tc := range messageTestCases {
		f.Add(tc.raw)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		msgs, _ := ParsePacket(data)
		for _, msg := range msgs {
			// Anything the scan produced must re-encode and decode back
			// to itself.
			raw, err := msg.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary(): err != nil on parsed message %#v: %v", msg, err)
			}
			again, err := ParsePacket(raw)
			if err != nil {
				t.Fatalf("ParsePacket(): err != nil on marshaled message %#v: %v", msg, err)
			}
			if len(again) != 1 || !reflect.DeepEqual(again[0], msg) {
				t.Fatalf("round trip mismatch: got %#v, want %#v", again, msg)
			}
		}
	})
}

func BenchmarkParsePacket(b *testing.B) {
	raw := messageTestCases[3].raw
	b.ReportAllocs()
	b.ResetTimer()
	var msgs []*Message
	for n := 0; n < b.N; n++ {
		msgs, _ = ParsePacket(raw)
	}
	result = msgs
}
