package tdoc

import (
	"contraption/tim/theader"
	"contraption/tim/thint"
	"contraption/tim/tpart"
	"contraption/tim/tsolution"
	"contraption/tim/tstruct"
	"contraption/tim/ttype"
	"github.com/samber/lo"
)

// ToDocument converts a level into its sparse document form. Every field
// equal to its default is left out.
func ToDocument(level tstruct.Level) Document {
	version := Version
	doc := Document{
		Version:     &version,
		Title:       lo.ToPtr(ToText(level.Header.Title)),
		Description: lo.ToPtr(ToText(level.Header.Description)),
		Background: &Background{
			Color:   level.Header.BackgroundColor,
			Unknown: level.Header.BackgroundUnknown,
		},
		GlobalSettings: &GlobalSettings{
			Pressure:  lo.ToPtr(level.Settings.Pressure),
			Gravity:   lo.ToPtr(level.Settings.Gravity),
			Music:     lo.ToPtr(level.Settings.Music),
			NumMoving: lo.ToPtr(uint16(len(level.MovingParts))),
			Unknown4:  level.Settings.Unknown4,
			Unknown6:  level.Settings.Unknown6,
			Unknown14: level.Settings.Unknown14,
		},
		Hints: ToHints(level.Hints),
		Parts: lo.Map(
			level.Parts(),
			func(record tpart.Record, _ int) Part { return ToPart(record) },
		),
		Solution: ToSolution(level.Solution),
	}
	if level.Header.MagicNumber != theader.MagicNumber {
		doc.MagicNumber = lo.ToPtr(level.Header.MagicNumber)
	}
	return doc
}

func ToHints(block thint.Block) *Hints {
	hasSlots := lo.SomeBy(
		block.Slots[:],
		func(slot thint.Slot) bool { return !slot.IsZero() },
	)
	if block.Count == 0 && !hasSlots {
		return nil
	}
	hints := Hints{Count: block.Count}
	if hasSlots {
		hints.Slots = lo.Map(
			block.Slots[:],
			func(slot thint.Slot, _ int) HintSlot {
				return HintSlot{X: slot.X, Y: slot.Y, Flip: slot.Flip, Text: slot.Text}
			},
		)
	}
	return &hints
}

func ToPart(record tpart.Record) Part {
	c := record.Common
	flags := ttype.DefaultFlags(c.Type)
	size := ttype.Size{Width1: c.Width1, Height1: c.Height1, Width2: c.Width2, Height2: c.Height2}

	part := Part{
		PartType:       lo.ToPtr(ttype.Name(c.Type)),
		Position:       &Position{X: c.X, Y: c.Y},
		Flags1:         notEqual(c.Flags1, flags.Flags1),
		Flags2:         notEqual(c.Flags2, flags.Flags2),
		Flags3:         notEqual(c.Flags3, flags.Flags3),
		Size:           notEqual(size, ttype.DefaultSize(c.Type)),
		Appearance:     c.Appearance,
		Behavior:       c.Behavior,
		Unknown10:      c.Unknown10,
		Unknown26:      c.Unknown26,
		Connected1:     notEqual(c.Connected1, tpart.NoPart),
		Connected2:     notEqual(c.Connected2, tpart.NoPart),
		OutletPlugged1: notEqual(c.OutletPlugged1, tpart.NoPart),
		OutletPlugged2: notEqual(c.OutletPlugged2, tpart.NoPart),
	}

	if record.Anchors != nil {
		a := *record.Anchors
		part.BeltConnection = notEqual(
			BeltConnection{X: a.BeltX, Y: a.BeltY, LineDistance: a.BeltLineDistance, Unknown: a.Unknown32},
			BeltConnection{},
		)
		part.Rope1Connection = notEqual(
			RopeConnection{X: a.Rope1X, Y: a.Rope1Y, Unknown: a.Unknown36},
			RopeConnection{},
		)
		part.Rope2Connection = notEqual(
			RopeConnection{X: a.Rope2X, Y: a.Rope2Y},
			RopeConnection{},
		)
	}

	switch record.Kind {
	case ttype.KindBelt:
		part.BeltData = ToBeltData(record.Belt)
	case ttype.KindRope:
		part.RopeData = ToRopeData(record.Rope)
	case ttype.KindPulley:
		part.PulleyData = ToPulleyData(record.Pulley)
	case ttype.KindProgrammableBall:
		ball := tpart.ProgrammableBall{}
		if record.Ball != nil {
			ball = *record.Ball
		}
		part.ProgrammableBallData = &ball
	}
	return part
}

func ToBeltData(belt *tpart.Belt) *BeltData {
	if belt == nil || *belt == tpart.DefaultBelt() {
		return nil
	}
	return &BeltData{
		Unknown28:      belt.Unknown28,
		Unknown30:      belt.Unknown30,
		ConnectedPart1: notEqual(belt.ConnectedPart1, tpart.NoPart),
		ConnectedPart2: notEqual(belt.ConnectedPart2, tpart.NoPart),
		Unknown36:      belt.Unknown36,
		Unknown38:      belt.Unknown38,
		Unknown40:      belt.Unknown40,
		Unknown42:      belt.Unknown42,
	}
}

func ToRopeData(rope *tpart.Rope) *RopeData {
	if rope == nil || *rope == tpart.DefaultRope() {
		return nil
	}
	return &RopeData{
		Unknown28:      rope.Unknown28,
		Unknown30:      rope.Unknown30,
		ConnectedPart1: notEqual(rope.ConnectedPart1, tpart.NoPart),
		ConnectedPart2: notEqual(rope.ConnectedPart2, tpart.NoPart),
		FieldUsage1:    rope.FieldUsage1,
		FieldUsage2:    rope.FieldUsage2,
		SegmentLength:  rope.SegmentLength,
		Unknown40:      rope.Unknown40,
		Unknown42:      rope.Unknown42,
		Unknown44:      rope.Unknown44,
	}
}

func ToPulleyData(pulley *tpart.Pulley) *PulleyData {
	if pulley == nil || *pulley == tpart.DefaultPulley() {
		return nil
	}
	return &PulleyData{
		Unknown28:      pulley.Unknown28,
		Unknown30:      pulley.Unknown30,
		Unknown32:      pulley.Unknown32,
		RopeIndex:      notEqual(pulley.RopeIndex, tpart.NoPart),
		ConnectedPart1: notEqual(pulley.ConnectedPart1, tpart.NoPart),
		ConnectedPart2: notEqual(pulley.ConnectedPart2, tpart.NoPart),
		Unknown40:      pulley.Unknown40,
		Unknown42:      pulley.Unknown42,
		Unknown44:      pulley.Unknown44,
		Unknown46:      pulley.Unknown46,
	}
}

// ToSolution lists conditions up to the last populated slot. Count is kept
// only when it disagrees with the listed conditions.
func ToSolution(block tsolution.Block) *Solution {
	_, lastIndex, found := lo.FindLastIndexOf(
		block.Conditions[:],
		func(c tsolution.Condition) bool { return !c.IsEmpty() },
	)
	if !found {
		lastIndex = -1
	}
	listed := block.Conditions[:lastIndex+1]
	if block.Count == 0 && len(listed) == 0 && block.Delay == 0 {
		return nil
	}

	solution := Solution{
		Conditions: lo.Map(
			listed,
			func(c tsolution.Condition, _ int) Condition {
				return Condition{
					PartIndex:  lo.ToPtr(c.PartIndex),
					State1:     c.State1,
					State2:     c.State2,
					PartCount:  c.PartCount,
					RectX:      c.RectX,
					RectY:      c.RectY,
					RectWidth:  c.RectWidth,
					RectHeight: c.RectHeight,
				}
			},
		),
		Count: notEqual(block.Count, uint16(len(listed))),
		Delay: block.Delay,
	}
	return &solution
}

// notEqual returns nil when v equals the default, so the field is elided.
func notEqual[T comparable](v T, def T) *T {
	if v == def {
		return nil
	}
	return &v
}
