// Package msgp holds the MessagePack wire form of a sketch.
package msgp

import (
	"fmt"

	mp "github.com/tinylib/msgp/msgp"
)

// Sketch is the wire form of a hyperbitbit sketch, encoded as a three
// element array [lgn, sketch1, sketch2]. Field order and width are part of
// the format.
type Sketch struct {
	LgN     uint8
	Sketch1 uint64
	Sketch2 uint64
}

// MarshalMsg appends the encoded sketch to b and returns the extended slice.
func (s *Sketch) MarshalMsg(b []byte) []byte {
	b = mp.AppendArrayHeader(b, 3)
	b = mp.AppendUint8(b, s.LgN)
	b = mp.AppendUint64(b, s.Sketch1)
	b = mp.AppendUint64(b, s.Sketch2)
	return b
}

// UnmarshalMsg decodes a sketch from b, returning any bytes left over. On
// error s is left unchanged.
func (s *Sketch) UnmarshalMsg(b []byte) ([]byte, error) {
	sz, o, err := mp.ReadArrayHeaderBytes(b)
	if err != nil {
		return b, err
	}
	if sz != 3 {
		return b, fmt.Errorf("msgp: sketch array has %d elements, want 3", sz)
	}

	var dec Sketch
	if dec.LgN, o, err = mp.ReadUint8Bytes(o); err != nil {
		return b, err
	}
	if dec.Sketch1, o, err = mp.ReadUint64Bytes(o); err != nil {
		return b, err
	}
	if dec.Sketch2, o, err = mp.ReadUint64Bytes(o); err != nil {
		return b, err
	}

	*s = dec
	return o, nil
}
