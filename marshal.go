package hyperbitbit

import (
	"encoding/json"

	"github.com/jettify/hyperbitbit/internal/msgp"
)

// jsonSketch mirrors the three state fields for JSON serialization.
type jsonSketch struct {
	LgN     uint8  `json:"lgn"`
	Sketch1 uint64 `json:"sketch1"`
	Sketch2 uint64 `json:"sketch2"`
}

// MarshalJSON encodes the sketch state as a JSON object. Two sketches with
// equal field values behave identically, so this round-trips losslessly.
func (s *Sketch) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonSketch{LgN: s.lgn, Sketch1: s.sketch1, Sketch2: s.sketch2})
}

// UnmarshalJSON restores sketch state produced by MarshalJSON.
func (s *Sketch) UnmarshalJSON(buf []byte) error {
	var j jsonSketch
	if err := json.Unmarshal(buf, &j); err != nil {
		return err
	}
	s.lgn, s.sketch1, s.sketch2 = j.LgN, j.Sketch1, j.Sketch2
	return nil
}

// MarshalBinary encodes the sketch as a MessagePack array, implementing
// encoding.BinaryMarshaler. The binary form is at most 20 bytes.
func (s *Sketch) MarshalBinary() ([]byte, error) {
	w := msgp.Sketch{LgN: s.lgn, Sketch1: s.sketch1, Sketch2: s.sketch2}
	return w.MarshalMsg(nil), nil
}

// UnmarshalBinary restores sketch state produced by MarshalBinary,
// implementing encoding.BinaryUnmarshaler. On error the receiver is left
// unchanged.
func (s *Sketch) UnmarshalBinary(data []byte) error {
	var w msgp.Sketch
	if _, err := w.UnmarshalMsg(data); err != nil {
		return err
	}
	s.lgn, s.sketch1, s.sketch2 = w.LgN, w.Sketch1, w.Sketch2
	return nil
}
