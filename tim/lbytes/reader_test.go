package lbytes

import (
	"testing"

	"contraption/tim/terror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadU16(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			0x2E, 0x01,
			0xFF, 0xFF,
		},
	)

	resultU16, err := reader.ReadU16()
	assert.NoError(t, err)
	assert.Equal(t, uint16(302), resultU16)

	resultI16, err := reader.ReadI16()
	assert.NoError(t, err)
	assert.Equal(t, int16(-1), resultI16)
	assert.Equal(t, 4, reader.Offset())
}

func TestReader_ReadU32BE(t *testing.T) {
	reader := NewBytesReader([]byte{0xEF, 0xAC, 0x13, 0x01})
	result, err := reader.ReadU32BE()
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xEFAC1301), result)
}

func TestReader_ReadCString(t *testing.T) {
	reader := NewBytesReader([]byte{'X', 0, 0, 'a', 'b'})

	first, err := reader.ReadCString()
	require.NoError(t, err)
	assert.Equal(t, "X", first)

	second, err := reader.ReadCString()
	require.NoError(t, err)
	assert.Equal(t, "", second)

	_, err = reader.ReadCString()
	var truncated terror.ErrTruncatedBuffer
	assert.True(t, errors.As(err, &truncated))
	assert.Equal(t, 3, truncated.Offset)
}

func TestReader_ReadBytes_Truncated(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2, 3})
	_, err := reader.ReadBytes(4)
	var truncated terror.ErrTruncatedBuffer
	require.True(t, errors.As(err, &truncated))
	assert.Equal(t, 4, truncated.Needed)
	assert.Equal(t, 3, truncated.Remaining)

	bs, err := reader.ReadBytes(0)
	assert.NoError(t, err)
	assert.Empty(t, bs)
}

func TestEncode(t *testing.T) {
	assert.Equal(t, []byte{0x2E, 0x01}, EncodeU16(302))
	assert.Equal(t, []byte{0xFF, 0xFF}, EncodeI16(-1))
	assert.Equal(t, []byte{0xEF, 0xAC, 0x13, 0x01}, EncodeU32BE(0xEFAC1301))
	assert.Equal(t, []byte{'a', 'b', 'c', 0}, EncodeCString("abc"))
	assert.Equal(t, []byte{0, 0, 0}, CreateZeroBytes(3))
}

func TestExecuteInstructions(t *testing.T) {
	type pair struct {
		A uint16 `json:"a"`
		B int16  `json:"b"`
	}
	reader := NewBytesReader([]byte{0x01, 0x00, 0xFE, 0xFF})
	result, err := ExecuteInstructions[pair](
		[]Instruction{
			{"a", CreateU16ReadFunction(reader)},
			{"b", CreateI16ReadFunction(reader)},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, pair{A: 1, B: -2}, *result)

	_, err = ExecuteInstructions[pair](
		[]Instruction{
			{"a", CreateU16ReadFunction(reader)},
		},
	)
	assert.Error(t, err)
}
