package tdoc

import (
	"fmt"

	"contraption/tim/terror"
	"contraption/tim/theader"
	"contraption/tim/thint"
	"contraption/tim/tpart"
	"contraption/tim/tsettings"
	"contraption/tim/tsolution"
	"contraption/tim/tstruct"
	"contraption/tim/ttype"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// FromDocument rebuilds a level, filling every absent field with its
// default. The record kind of a part comes from whichever variant object is
// present and is not checked against part_type; without one, the kind
// follows the tag.
func FromDocument(doc Document) (*tstruct.Level, error) {
	caller := "tdoc.FromDocument"
	if doc.Version == nil {
		return nil, terror.ErrInvalidDocument{Caller: caller, Key: "version"}
	}
	if *doc.Version > Version {
		return nil, terror.ErrInvalidDocument{
			Caller: caller,
			Key:    "version",
			Reason: fmt.Sprintf("unsupported version %d", *doc.Version),
		}
	}
	if doc.Title == nil {
		return nil, terror.ErrInvalidDocument{Caller: caller, Key: "title"}
	}
	if doc.Description == nil {
		return nil, terror.ErrInvalidDocument{Caller: caller, Key: "description"}
	}
	if doc.Background == nil {
		return nil, terror.ErrInvalidDocument{Caller: caller, Key: "background"}
	}
	if doc.Parts == nil {
		return nil, terror.ErrInvalidDocument{Caller: caller, Key: "parts"}
	}
	title, err := FromText("title", *doc.Title)
	if err != nil {
		return nil, err
	}
	description, err := FromText("description", *doc.Description)
	if err != nil {
		return nil, err
	}
	settings, err := FromGlobalSettings(doc.GlobalSettings)
	if err != nil {
		return nil, err
	}
	hints, err := FromHints(doc.Hints)
	if err != nil {
		return nil, err
	}
	solution, err := FromSolution(doc.Solution)
	if err != nil {
		return nil, err
	}

	level := tstruct.Level{
		Header: theader.Header{
			MagicNumber:       valueOr(doc.MagicNumber, theader.MagicNumber),
			BackgroundUnknown: doc.Background.Unknown,
			BackgroundColor:   doc.Background.Color,
			Title:             title,
			Description:       description,
		},
		Settings: *settings,
		Hints:    hints,
		Solution: solution,
	}

	parts := make([]tpart.Record, 0, len(doc.Parts))
	for i, part := range doc.Parts {
		record, err := FromPart(part)
		if err != nil {
			return nil, errors.Wrapf(err, "%s error: part %d", caller, i)
		}
		parts = append(parts, record)
	}

	if doc.GlobalSettings.NumMoving == nil {
		// without an explicit count the moving group is guessed from the flags
		level.MovingParts = lo.Filter(parts, func(r tpart.Record, _ int) bool { return r.IsMoving() })
		level.FixedParts = lo.Reject(parts, func(r tpart.Record, _ int) bool { return r.IsMoving() })
	} else {
		numMoving := int(*doc.GlobalSettings.NumMoving)
		if numMoving > len(parts) {
			return nil, terror.ErrInvalidDocument{
				Caller: caller,
				Key:    "global_settings.num_moving",
				Reason: fmt.Sprintf("%d moving parts but only %d parts", numMoving, len(parts)),
			}
		}
		level.MovingParts = parts[:numMoving:numMoving]
		level.FixedParts = parts[numMoving:]
	}
	level.Settings.NumMoving = uint16(len(level.MovingParts))
	level.Settings.NumFixed = uint16(len(level.FixedParts))

	return &level, nil
}

func FromGlobalSettings(gs *GlobalSettings) (*tsettings.Settings, error) {
	caller := "tdoc.FromGlobalSettings"
	if gs == nil {
		return nil, terror.ErrInvalidDocument{Caller: caller, Key: "global_settings"}
	}
	if gs.Pressure == nil {
		return nil, terror.ErrInvalidDocument{Caller: caller, Key: "global_settings.pressure"}
	}
	if gs.Gravity == nil {
		return nil, terror.ErrInvalidDocument{Caller: caller, Key: "global_settings.gravity"}
	}
	if gs.Music == nil {
		return nil, terror.ErrInvalidDocument{Caller: caller, Key: "global_settings.music"}
	}
	return &tsettings.Settings{
		Pressure:  *gs.Pressure,
		Gravity:   *gs.Gravity,
		Unknown4:  gs.Unknown4,
		Unknown6:  gs.Unknown6,
		Music:     *gs.Music,
		Unknown14: gs.Unknown14,
	}, nil
}

func FromHints(hints *Hints) (thint.Block, error) {
	block := thint.Block{}
	if hints == nil {
		return block, nil
	}
	if len(hints.Slots) > thint.NumSlots {
		return block, terror.ErrInvalidDocument{
			Caller: "tdoc.FromHints",
			Key:    "hints.slots",
			Reason: fmt.Sprintf("%d slots but the file holds %d", len(hints.Slots), thint.NumSlots),
		}
	}
	block.Count = hints.Count
	for i, slot := range hints.Slots {
		block.Slots[i] = thint.Slot{X: slot.X, Y: slot.Y, Flip: slot.Flip, Text: slot.Text}
	}
	return block, nil
}

func FromPart(part Part) (tpart.Record, error) {
	caller := "tdoc.FromPart"
	if part.PartType == nil {
		return tpart.Record{}, terror.ErrInvalidDocument{Caller: caller, Key: "part_type"}
	}
	if part.Position == nil {
		return tpart.Record{}, terror.ErrInvalidDocument{Caller: caller, Key: "position"}
	}
	tag, ok := ttype.TagByName(*part.PartType)
	if !ok {
		return tpart.Record{}, terror.ErrInvalidDocument{
			Caller: caller,
			Key:    "part_type",
			Reason: fmt.Sprintf(`unknown part type "%s"`, *part.PartType),
		}
	}

	flags := ttype.DefaultFlags(tag)
	size := valueOr(part.Size, ttype.DefaultSize(tag))
	record := tpart.Record{
		Kind: ResolvePartKind(tag, part),
		Common: tpart.Common{
			Type:           tag,
			Flags1:         valueOr(part.Flags1, flags.Flags1),
			Flags2:         valueOr(part.Flags2, flags.Flags2),
			Flags3:         valueOr(part.Flags3, flags.Flags3),
			Appearance:     part.Appearance,
			Unknown10:      part.Unknown10,
			Width1:         size.Width1,
			Height1:        size.Height1,
			Width2:         size.Width2,
			Height2:        size.Height2,
			X:              part.Position.X,
			Y:              part.Position.Y,
			Behavior:       part.Behavior,
			Unknown26:      part.Unknown26,
			Connected1:     valueOr(part.Connected1, tpart.NoPart),
			Connected2:     valueOr(part.Connected2, tpart.NoPart),
			OutletPlugged1: valueOr(part.OutletPlugged1, tpart.NoPart),
			OutletPlugged2: valueOr(part.OutletPlugged2, tpart.NoPart),
		},
	}

	switch record.Kind {
	case ttype.KindBelt:
		record.Belt = FromBeltData(part.BeltData)
	case ttype.KindRope:
		record.Rope = FromRopeData(part.RopeData)
	case ttype.KindPulley:
		record.Pulley = FromPulleyData(part.PulleyData)
	case ttype.KindProgrammableBall:
		record.Anchors = FromAnchors(part)
		record.Ball = lo.ToPtr(valueOr(part.ProgrammableBallData, tpart.ProgrammableBall{}))
	default:
		record.Anchors = FromAnchors(part)
	}
	return record, nil
}

// ResolvePartKind picks the record kind from the variant object present in
// part, falling back to the tag when there is none.
func ResolvePartKind(tag uint16, part Part) ttype.Kind {
	switch {
	case part.BeltData != nil:
		return ttype.KindBelt
	case part.RopeData != nil:
		return ttype.KindRope
	case part.PulleyData != nil:
		return ttype.KindPulley
	case part.ProgrammableBallData != nil:
		return ttype.KindProgrammableBall
	default:
		return ttype.ResolveKind(tag)
	}
}

func FromAnchors(part Part) *tpart.Anchors {
	belt := valueOr(part.BeltConnection, BeltConnection{})
	rope1 := valueOr(part.Rope1Connection, RopeConnection{})
	rope2 := valueOr(part.Rope2Connection, RopeConnection{})
	return &tpart.Anchors{
		BeltX:            belt.X,
		BeltY:            belt.Y,
		BeltLineDistance: belt.LineDistance,
		Unknown32:        belt.Unknown,
		Rope1X:           rope1.X,
		Rope1Y:           rope1.Y,
		Unknown36:        rope1.Unknown,
		Rope2X:           rope2.X,
		Rope2Y:           rope2.Y,
	}
}

func FromBeltData(data *BeltData) *tpart.Belt {
	d := valueOr(data, BeltData{})
	return &tpart.Belt{
		Unknown28:      d.Unknown28,
		Unknown30:      d.Unknown30,
		ConnectedPart1: valueOr(d.ConnectedPart1, tpart.NoPart),
		ConnectedPart2: valueOr(d.ConnectedPart2, tpart.NoPart),
		Unknown36:      d.Unknown36,
		Unknown38:      d.Unknown38,
		Unknown40:      d.Unknown40,
		Unknown42:      d.Unknown42,
	}
}

func FromRopeData(data *RopeData) *tpart.Rope {
	d := valueOr(data, RopeData{})
	return &tpart.Rope{
		Unknown28:      d.Unknown28,
		Unknown30:      d.Unknown30,
		ConnectedPart1: valueOr(d.ConnectedPart1, tpart.NoPart),
		ConnectedPart2: valueOr(d.ConnectedPart2, tpart.NoPart),
		FieldUsage1:    d.FieldUsage1,
		FieldUsage2:    d.FieldUsage2,
		SegmentLength:  d.SegmentLength,
		Unknown40:      d.Unknown40,
		Unknown42:      d.Unknown42,
		Unknown44:      d.Unknown44,
	}
}

func FromPulleyData(data *PulleyData) *tpart.Pulley {
	d := valueOr(data, PulleyData{})
	return &tpart.Pulley{
		Unknown28:      d.Unknown28,
		Unknown30:      d.Unknown30,
		Unknown32:      d.Unknown32,
		RopeIndex:      valueOr(d.RopeIndex, tpart.NoPart),
		ConnectedPart1: valueOr(d.ConnectedPart1, tpart.NoPart),
		ConnectedPart2: valueOr(d.ConnectedPart2, tpart.NoPart),
		Unknown40:      d.Unknown40,
		Unknown42:      d.Unknown42,
		Unknown44:      d.Unknown44,
		Unknown46:      d.Unknown46,
	}
}

func FromSolution(solution *Solution) (tsolution.Block, error) {
	block := tsolution.EmptyBlock()
	if solution == nil {
		return block, nil
	}
	if len(solution.Conditions) > tsolution.NumConditions {
		return block, terror.ErrInvalidDocument{
			Caller: "tdoc.FromSolution",
			Key:    "solution.conditions",
			Reason: fmt.Sprintf(
				"%d conditions but the file holds %d",
				len(solution.Conditions), tsolution.NumConditions,
			),
		}
	}
	for i, c := range solution.Conditions {
		block.Conditions[i] = tsolution.Condition{
			PartIndex:  valueOr(c.PartIndex, tpart.NoPart),
			State1:     c.State1,
			State2:     c.State2,
			PartCount:  c.PartCount,
			RectX:      c.RectX,
			RectY:      c.RectY,
			RectWidth:  c.RectWidth,
			RectHeight: c.RectHeight,
		}
	}
	block.Count = valueOr(solution.Count, uint16(len(solution.Conditions)))
	block.Delay = solution.Delay
	return block, nil
}

func valueOr[T any](t *T, fallback T) T {
	if t == nil {
		return fallback
	}
	return *t
}
