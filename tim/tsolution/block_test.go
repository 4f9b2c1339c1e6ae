package tsolution

import (
	"testing"

	"contraption/tim/lbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBlock_Empty(t *testing.T) {
	bs := EncodeBlock(EmptyBlock())
	require.Len(t, bs, BlockSize)
	require.Len(t, bs, 132)
	assert.Equal(t, []byte{0, 0}, bs[:2])
	for i := 0; i < NumConditions; i++ {
		offset := 2 + i*ConditionSize
		assert.Equal(t, []byte{0xFF, 0xFF}, bs[offset:offset+2])
		assert.Equal(t, make([]byte, 14), bs[offset+2:offset+ConditionSize])
	}
	assert.Equal(t, []byte{0, 0}, bs[130:])
}

func TestDecodeBlock(t *testing.T) {
	block := EmptyBlock()
	block.Count = 2
	block.Delay = 30
	block.Conditions[0] = Condition{
		PartIndex: 0, State1: 1, PartCount: 1,
		RectX: -10, RectY: 20, RectWidth: 64, RectHeight: 32,
	}

	decoded, err := DecodeBlock(lbytes.NewBytesReader(EncodeBlock(block)))
	require.NoError(t, err)
	assert.Equal(t, block, *decoded)
	assert.False(t, decoded.Conditions[0].IsEmpty())
	assert.True(t, decoded.Conditions[1].IsEmpty())
}

func TestDecodeBlock_Truncated(t *testing.T) {
	bs := EncodeBlock(EmptyBlock())
	_, err := DecodeBlock(lbytes.NewBytesReader(bs[:131]))
	assert.Error(t, err)
}
