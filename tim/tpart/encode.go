package tpart

import (
	"contraption/tim/lbytes"
	"contraption/tim/ttype"
)

// Encode packs r into exactly r.Kind.Width() bytes. A missing tail encodes
// as its default value.
func Encode(r Record) []byte {
	c := r.Common
	bs := make([]byte, 0, r.Kind.Width())
	bs = append(bs, lbytes.EncodeU16(c.Type)...)
	bs = append(bs, lbytes.EncodeU16(c.Flags1)...)
	bs = append(bs, lbytes.EncodeU16(c.Flags2)...)
	bs = append(bs, lbytes.EncodeU16(c.Flags3)...)
	bs = append(bs, lbytes.EncodeU16(c.Appearance)...)
	bs = append(bs, lbytes.EncodeU16(c.Unknown10)...)
	bs = append(bs, lbytes.EncodeU16(c.Width1)...)
	bs = append(bs, lbytes.EncodeU16(c.Height1)...)
	bs = append(bs, lbytes.EncodeU16(c.Width2)...)
	bs = append(bs, lbytes.EncodeU16(c.Height2)...)
	bs = append(bs, lbytes.EncodeI16(c.X)...)
	bs = append(bs, lbytes.EncodeI16(c.Y)...)
	bs = append(bs, lbytes.EncodeU16(c.Behavior)...)
	bs = append(bs, lbytes.EncodeU16(c.Unknown26)...)

	switch r.Kind {
	case ttype.KindBelt:
		bs = append(bs, EncodeBelt(valueOr(r.Belt, DefaultBelt()))...)
	case ttype.KindRope:
		bs = append(bs, EncodeRope(valueOr(r.Rope, DefaultRope()))...)
	case ttype.KindPulley:
		bs = append(bs, EncodePulley(valueOr(r.Pulley, DefaultPulley()))...)
	default:
		bs = append(bs, EncodeAnchors(valueOr(r.Anchors, Anchors{}))...)
	}

	bs = append(bs, lbytes.EncodeI16(c.Connected1)...)
	bs = append(bs, lbytes.EncodeI16(c.Connected2)...)
	bs = append(bs, lbytes.EncodeI16(c.OutletPlugged1)...)
	bs = append(bs, lbytes.EncodeI16(c.OutletPlugged2)...)

	if r.Kind == ttype.KindProgrammableBall {
		bs = append(bs, EncodeProgrammableBall(valueOr(r.Ball, ProgrammableBall{}))...)
	}
	return bs
}

func EncodeAnchors(a Anchors) []byte {
	bs := make([]byte, 0, 12)
	bs = append(bs, lbytes.EncodeU8(a.BeltX)...)
	bs = append(bs, lbytes.EncodeU8(a.BeltY)...)
	bs = append(bs, lbytes.EncodeU16(a.BeltLineDistance)...)
	bs = append(bs, lbytes.EncodeU16(a.Unknown32)...)
	bs = append(bs, lbytes.EncodeU8(a.Rope1X)...)
	bs = append(bs, lbytes.EncodeU8(a.Rope1Y)...)
	bs = append(bs, lbytes.EncodeU16(a.Unknown36)...)
	bs = append(bs, lbytes.EncodeU8(a.Rope2X)...)
	bs = append(bs, lbytes.EncodeU8(a.Rope2Y)...)
	return bs
}

func EncodeBelt(b Belt) []byte {
	bs := make([]byte, 0, 16)
	bs = append(bs, lbytes.EncodeU16(b.Unknown28)...)
	bs = append(bs, lbytes.EncodeU16(b.Unknown30)...)
	bs = append(bs, lbytes.EncodeI16(b.ConnectedPart1)...)
	bs = append(bs, lbytes.EncodeI16(b.ConnectedPart2)...)
	bs = append(bs, lbytes.EncodeU16(b.Unknown36)...)
	bs = append(bs, lbytes.EncodeU16(b.Unknown38)...)
	bs = append(bs, lbytes.EncodeU16(b.Unknown40)...)
	bs = append(bs, lbytes.EncodeU16(b.Unknown42)...)
	return bs
}

func EncodeRope(r Rope) []byte {
	bs := make([]byte, 0, 18)
	bs = append(bs, lbytes.EncodeU16(r.Unknown28)...)
	bs = append(bs, lbytes.EncodeU16(r.Unknown30)...)
	bs = append(bs, lbytes.EncodeI16(r.ConnectedPart1)...)
	bs = append(bs, lbytes.EncodeI16(r.ConnectedPart2)...)
	bs = append(bs, lbytes.EncodeU8(r.FieldUsage1)...)
	bs = append(bs, lbytes.EncodeU8(r.FieldUsage2)...)
	bs = append(bs, lbytes.EncodeU16(r.SegmentLength)...)
	bs = append(bs, lbytes.EncodeU16(r.Unknown40)...)
	bs = append(bs, lbytes.EncodeU16(r.Unknown42)...)
	bs = append(bs, lbytes.EncodeU16(r.Unknown44)...)
	return bs
}

func EncodePulley(p Pulley) []byte {
	bs := make([]byte, 0, 20)
	bs = append(bs, lbytes.EncodeU16(p.Unknown28)...)
	bs = append(bs, lbytes.EncodeU16(p.Unknown30)...)
	bs = append(bs, lbytes.EncodeU16(p.Unknown32)...)
	bs = append(bs, lbytes.EncodeI16(p.RopeIndex)...)
	bs = append(bs, lbytes.EncodeI16(p.ConnectedPart1)...)
	bs = append(bs, lbytes.EncodeI16(p.ConnectedPart2)...)
	bs = append(bs, lbytes.EncodeU16(p.Unknown40)...)
	bs = append(bs, lbytes.EncodeU16(p.Unknown42)...)
	bs = append(bs, lbytes.EncodeU16(p.Unknown44)...)
	bs = append(bs, lbytes.EncodeU16(p.Unknown46)...)
	return bs
}

func EncodeProgrammableBall(b ProgrammableBall) []byte {
	bs := make([]byte, 0, 12)
	bs = append(bs, lbytes.EncodeU16(b.Density)...)
	bs = append(bs, lbytes.EncodeU16(b.Elasticity)...)
	bs = append(bs, lbytes.EncodeU16(b.Friction)...)
	bs = append(bs, lbytes.EncodeU16(b.GravityBuoyancy)...)
	bs = append(bs, lbytes.EncodeU16(b.Mass)...)
	bs = append(bs, lbytes.EncodeU16(b.Appearance2)...)
	return bs
}

func valueOr[T any](t *T, fallback T) T {
	if t == nil {
		return fallback
	}
	return *t
}
