package tpart

import (
	"encoding/binary"
	"testing"

	"contraption/tim/terror"
	"contraption/tim/ttype"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createBowlingBallBytes() []byte {
	bs := []byte{
		0x09, 0x00, // type
		0x00, 0x10, // flags 1
		0x00, 0x00, // flags 2
		0x08, 0x80, // flags 3
		0x00, 0x00, // appearance
		0x00, 0x00, // unknown 10
		0x20, 0x00, 0x20, 0x00, 0x20, 0x00, 0x20, 0x00, // sizes
		0x2E, 0x01, // x
		0x01, 0x00, // y
		0x00, 0x00, // behavior
		0x00, 0x00, // unknown 26
	}
	bs = append(bs, lbytesZero(12)...)
	bs = append(bs, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)
	return bs
}

func lbytesZero(n int) []byte {
	return make([]byte, n)
}

func TestDecode_Base(t *testing.T) {
	bs := createBowlingBallBytes()
	require.Len(t, bs, 48)

	record, width, err := Decode(bs, 0)
	require.NoError(t, err)
	assert.Equal(t, 48, width)
	assert.Equal(t, ttype.KindBase, record.Kind)
	assert.Equal(t, uint16(9), record.Tag())
	assert.Equal(t, int16(302), record.Common.X)
	assert.Equal(t, int16(1), record.Common.Y)
	assert.Equal(t, uint16(0x8008), record.Common.Flags3)
	assert.Equal(t, NoPart, record.Common.Connected1)
	assert.Equal(t, NoPart, record.Common.OutletPlugged2)
	require.NotNil(t, record.Anchors)
	assert.Nil(t, record.Belt)
	assert.True(t, record.IsMoving())

	assert.Equal(t, bs, Encode(record))
}

func TestDecode_Offset(t *testing.T) {
	bs := append([]byte{0xAA, 0xBB, 0xCC}, createBowlingBallBytes()...)
	record, width, err := Decode(bs, 3)
	require.NoError(t, err)
	assert.Equal(t, 48, width)
	assert.Equal(t, uint16(9), record.Tag())
}

func TestNewBase_RoundTrip(t *testing.T) {
	record, err := NewBase(9, 300, 150)
	require.NoError(t, err)
	assert.Equal(t, ttype.DefaultFlags(9).Flags1, record.Common.Flags1)

	bs := Encode(record)
	require.Len(t, bs, 48)

	decoded, width, err := Decode(bs, 0)
	require.NoError(t, err)
	assert.Equal(t, 48, width)
	assert.Equal(t, uint16(9), decoded.Tag())
	assert.Equal(t, int16(300), decoded.Common.X)
	assert.Equal(t, int16(150), decoded.Common.Y)
	assert.Equal(t, record, decoded)
}

func TestNewBase_OutOfBounds(t *testing.T) {
	cases := [][2]int{{-1, 0}, {561, 0}, {0, -1}, {0, 378}}
	for _, c := range cases {
		_, err := NewBase(9, c[0], c[1])
		var outOfBounds terror.ErrOutOfBounds
		assert.True(t, errors.As(err, &outOfBounds), "%v", c)
	}
	_, err := NewBase(9, MaxX, MaxY)
	assert.NoError(t, err)
}

func TestNewBase_VariantTag(t *testing.T) {
	for _, tag := range []uint16{ttype.BeltTag, ttype.RopeTag, ttype.PulleyTag, ttype.ProgrammableBallTag} {
		_, err := NewBase(tag, 10, 10)
		var mismatch terror.ErrKindMismatch
		require.True(t, errors.As(err, &mismatch), "tag %d", tag)
		assert.Equal(t, tag, mismatch.Tag)
	}

	record, err := NewBase(4242, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, ttype.ResolveKind(record.Tag()).Width(), len(Encode(record)))
}

func TestBelt_RoundTrip(t *testing.T) {
	record := NewBelt(NoPart, NoPart)
	bs := Encode(record)
	require.Len(t, bs, 52)

	decoded, width, err := Decode(bs, 0)
	require.NoError(t, err)
	assert.Equal(t, 52, width)
	assert.Equal(t, ttype.KindBelt, decoded.Kind)
	require.NotNil(t, decoded.Belt)
	assert.Equal(t, NoPart, decoded.Belt.ConnectedPart1)
	assert.Equal(t, record, decoded)
}

func TestBelt_ZeroIsNotAbsent(t *testing.T) {
	record := NewBelt(0, 3)
	decoded, _, err := Decode(Encode(record), 0)
	require.NoError(t, err)
	assert.Equal(t, int16(0), decoded.Belt.ConnectedPart1)
	assert.Equal(t, int16(3), decoded.Belt.ConnectedPart2)
}

func TestVariants_Layout(t *testing.T) {
	rope := NewRope(1, 2)
	rope.Rope.SegmentLength = 0x1234
	rope.Rope.FieldUsage1 = 0x7F
	rope.Common.Connected1 = 5

	pulley, err := NewPulley(10, 20, 4)
	require.NoError(t, err)

	ball, err := NewProgrammableBall(100, 100, ProgrammableBall{
		Density: 1, Elasticity: 2, Friction: 3, GravityBuoyancy: 4, Mass: 5, Appearance2: 6,
	})
	require.NoError(t, err)

	ropeBytes := Encode(rope)
	require.Len(t, ropeBytes, 54)
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(ropeBytes[32:]))
	assert.Equal(t, byte(0x7F), ropeBytes[36])
	assert.Equal(t, uint16(0x1234), binary.LittleEndian.Uint16(ropeBytes[38:]))
	assert.Equal(t, uint16(5), binary.LittleEndian.Uint16(ropeBytes[46:]))

	pulleyBytes := Encode(pulley)
	require.Len(t, pulleyBytes, 56)
	assert.Equal(t, uint16(4), binary.LittleEndian.Uint16(pulleyBytes[34:]))
	assert.Equal(t, uint16(0xFFFF), binary.LittleEndian.Uint16(pulleyBytes[54:]))

	ballBytes := Encode(ball)
	require.Len(t, ballBytes, 60)
	assert.Equal(t, uint16(0xFFFF), binary.LittleEndian.Uint16(ballBytes[46:]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(ballBytes[48:]))
	assert.Equal(t, uint16(6), binary.LittleEndian.Uint16(ballBytes[58:]))

	lo.ForEach(
		[]Record{rope, pulley, ball},
		func(record Record, _ int) {
			decoded, width, err := Decode(Encode(record), 0)
			require.NoError(t, err)
			assert.Equal(t, record.Width(), width)
			assert.Equal(t, record, decoded)
		},
	)
}

func TestDecode_EmptySlot(t *testing.T) {
	bs := make([]byte, 48)
	binary.LittleEndian.PutUint16(bs, ttype.EmptySlotTag)
	record, width, err := Decode(bs, 0)
	require.NoError(t, err)
	assert.Equal(t, 48, width)
	assert.Equal(t, ttype.KindBase, record.Kind)
	assert.Equal(t, ttype.EmptySlotTag, record.Tag())
}

func TestDecode_Truncated(t *testing.T) {
	record := NewBelt(NoPart, NoPart)
	bs := Encode(record)

	_, _, err := Decode(bs[:50], 0)
	var truncated terror.ErrTruncatedBuffer
	require.True(t, errors.As(err, &truncated))
	assert.Equal(t, 52, truncated.Needed)
	assert.Equal(t, 50, truncated.Remaining)

	_, _, err = Decode(bs, 51)
	assert.True(t, errors.As(err, &truncated))
}

func TestEncode_MissingTail(t *testing.T) {
	record := Record{
		Kind:   ttype.KindBelt,
		Common: NewCommon(ttype.BeltTag, 0, 0),
	}
	decoded, _, err := Decode(Encode(record), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultBelt(), *decoded.Belt)
}
