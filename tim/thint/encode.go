package thint

import (
	"contraption/tim/lbytes"
)

func EncodeSlot(slot Slot) []byte {
	bs := make([]byte, 0, SlotSize)
	bs = append(bs, lbytes.EncodeU16(slot.X)...)
	bs = append(bs, lbytes.EncodeU16(slot.Y)...)
	bs = append(bs, lbytes.EncodeU16(slot.Flip)...)
	bs = append(bs, lbytes.EncodeU8(slot.Text)...)
	return bs
}

// EncodeBlock always emits every slot, zero-filled when unused.
func EncodeBlock(block Block) []byte {
	bs := make([]byte, 0, BlockSize)
	bs = append(bs, lbytes.EncodeU16(block.Count)...)
	for _, slot := range block.Slots {
		if slot.IsZero() {
			bs = append(bs, lbytes.CreateZeroBytes(SlotSize)...)
			continue
		}
		bs = append(bs, EncodeSlot(slot)...)
	}
	return bs
}
