package thint

import (
	"contraption/ds"
	"contraption/tim/lbytes"
	"github.com/pkg/errors"
)

func DecodeSlot(bs []byte) (*Slot, error) {
	reader := lbytes.NewBytesReader(bs)
	readU16 := lbytes.CreateU16ReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "x", ReadFunction: readU16},
		{Key: "y", ReadFunction: readU16},
		{Key: "flip", ReadFunction: readU16},
		{Key: "text", ReadFunction: lbytes.CreateU8ReadFunction(reader)},
	}
	slot, err := lbytes.ExecuteInstructions[Slot](instructions)
	if err != nil {
		return nil, errors.Wrap(err, "thint.DecodeSlot error")
	}
	return slot, nil
}

func DecodeBlock(reader *lbytes.Reader) (*Block, error) {
	block := Block{}
	err := error(nil)
	block.Count, err = reader.ReadU16()
	if err != nil {
		return nil, errors.Wrap(err, "thint.DecodeBlock error: read count")
	}
	slotsBytes, err := reader.ReadBytes(NumSlots * SlotSize)
	if err != nil {
		return nil, errors.Wrap(err, "thint.DecodeBlock error: read slots")
	}
	for i, chunk := range ds.MakeChunks(slotsBytes, SlotSize) {
		slot, err := DecodeSlot(chunk)
		if err != nil {
			return nil, errors.Wrapf(err, "thint.DecodeBlock error: slot %d", i)
		}
		block.Slots[i] = *slot
	}
	return &block, nil
}
