package tsolution

import (
	"contraption/tim/lbytes"
)

func EncodeCondition(c Condition) []byte {
	bs := make([]byte, 0, ConditionSize)
	bs = append(bs, lbytes.EncodeI16(c.PartIndex)...)
	bs = append(bs, lbytes.EncodeU16(c.State1)...)
	bs = append(bs, lbytes.EncodeU16(c.State2)...)
	bs = append(bs, lbytes.EncodeU16(c.PartCount)...)
	bs = append(bs, lbytes.EncodeI16(c.RectX)...)
	bs = append(bs, lbytes.EncodeI16(c.RectY)...)
	bs = append(bs, lbytes.EncodeI16(c.RectWidth)...)
	bs = append(bs, lbytes.EncodeI16(c.RectHeight)...)
	return bs
}

func EncodeBlock(block Block) []byte {
	bs := make([]byte, 0, BlockSize)
	bs = append(bs, lbytes.EncodeU16(block.Count)...)
	for _, condition := range block.Conditions {
		bs = append(bs, EncodeCondition(condition)...)
	}
	bs = append(bs, lbytes.EncodeU16(block.Delay)...)
	return bs
}
