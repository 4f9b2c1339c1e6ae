package thint

type (
	// Block is the hint section. The editor always reserves NumSlots slots;
	// Count is informational and is not checked against them.
	Block struct {
		Count uint16         `json:"count"`
		Slots [NumSlots]Slot `json:"slots"`
	}
	Slot struct {
		X    uint16 `json:"x"`
		Y    uint16 `json:"y"`
		Flip uint16 `json:"flip"`
		Text uint8  `json:"text"`
	}
)

const (
	NumSlots  = 8
	SlotSize  = 7
	BlockSize = 2 + NumSlots*SlotSize
)

func (s Slot) IsZero() bool {
	return s == Slot{}
}
