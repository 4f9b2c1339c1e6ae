package tpart

import (
	"contraption/tim/terror"
	"contraption/tim/ttype"
)

// NewCommon fills the shared fields of a fresh record of the given tag with
// registry defaults. References start unset.
func NewCommon(tag uint16, x int16, y int16) Common {
	flags := ttype.DefaultFlags(tag)
	size := ttype.DefaultSize(tag)
	return Common{
		Type:           tag,
		Flags1:         flags.Flags1,
		Flags2:         flags.Flags2,
		Flags3:         flags.Flags3,
		Width1:         size.Width1,
		Height1:        size.Height1,
		Width2:         size.Width2,
		Height2:        size.Height2,
		X:              x,
		Y:              y,
		Connected1:     NoPart,
		Connected2:     NoPart,
		OutletPlugged1: NoPart,
		OutletPlugged2: NoPart,
	}
}

func CheckBounds(caller string, x int, y int) error {
	if x < 0 || x > MaxX || y < 0 || y > MaxY {
		return terror.ErrOutOfBounds{Caller: caller, X: x, Y: y}
	}
	return nil
}

// NewBase builds a base record positioned on the playfield. Tags with their
// own layout are refused; use the dedicated constructors for those.
func NewBase(tag uint16, x int, y int) (Record, error) {
	if kind := ttype.ResolveKind(tag); kind != ttype.KindBase {
		return Record{}, terror.ErrKindMismatch{Caller: "tpart.NewBase", Tag: tag, Kind: ttype.KindBase.String()}
	}
	if err := CheckBounds("tpart.NewBase", x, y); err != nil {
		return Record{}, err
	}
	return Record{
		Kind:    ttype.KindBase,
		Common:  NewCommon(tag, int16(x), int16(y)),
		Anchors: &Anchors{},
	}, nil
}

func NewProgrammableBall(x int, y int, ball ProgrammableBall) (Record, error) {
	if err := CheckBounds("tpart.NewProgrammableBall", x, y); err != nil {
		return Record{}, err
	}
	return Record{
		Kind:    ttype.KindProgrammableBall,
		Common:  NewCommon(ttype.ProgrammableBallTag, int16(x), int16(y)),
		Anchors: &Anchors{},
		Ball:    &ball,
	}, nil
}

// NewBelt links two parts by index.
func NewBelt(part1 int16, part2 int16) Record {
	belt := DefaultBelt()
	belt.ConnectedPart1 = part1
	belt.ConnectedPart2 = part2
	return Record{
		Kind:   ttype.KindBelt,
		Common: NewCommon(ttype.BeltTag, 0, 0),
		Belt:   &belt,
	}
}

func NewRope(part1 int16, part2 int16) Record {
	rope := DefaultRope()
	rope.ConnectedPart1 = part1
	rope.ConnectedPart2 = part2
	return Record{
		Kind:   ttype.KindRope,
		Common: NewCommon(ttype.RopeTag, 0, 0),
		Rope:   &rope,
	}
}

func NewPulley(x int, y int, ropeIndex int16) (Record, error) {
	if err := CheckBounds("tpart.NewPulley", x, y); err != nil {
		return Record{}, err
	}
	pulley := DefaultPulley()
	pulley.RopeIndex = ropeIndex
	return Record{
		Kind:   ttype.KindPulley,
		Common: NewCommon(ttype.PulleyTag, int16(x), int16(y)),
		Pulley: &pulley,
	}, nil
}
