package tpart

import (
	"encoding/binary"

	"contraption/tim/lbytes"
	"contraption/tim/terror"
	"contraption/tim/ttype"
	"github.com/pkg/errors"
)

type trailer struct {
	Connected1     int16 `json:"connected_1"`
	Connected2     int16 `json:"connected_2"`
	OutletPlugged1 int16 `json:"outlet_plugged_1"`
	OutletPlugged2 int16 `json:"outlet_plugged_2"`
}

// PeekKind reads the tag at offset without consuming it.
func PeekKind(buf []byte, offset int) (uint16, ttype.Kind, error) {
	if offset < 0 || len(buf)-offset < 2 {
		return 0, ttype.KindBase, terror.ErrTruncatedBuffer{
			Caller:    "tpart.PeekKind",
			Offset:    offset,
			Needed:    2,
			Remaining: max(len(buf)-offset, 0),
		}
	}
	tag := binary.LittleEndian.Uint16(buf[offset:])
	return tag, ttype.ResolveKind(tag), nil
}

// Decode unpacks the record starting at offset and returns it together with
// the number of bytes it occupies. The width is chosen by the tag alone.
func Decode(buf []byte, offset int) (Record, int, error) {
	_, kind, err := PeekKind(buf, offset)
	if err != nil {
		return Record{}, 0, err
	}
	width := kind.Width()
	if len(buf)-offset < width {
		return Record{}, 0, terror.ErrTruncatedBuffer{
			Caller:    "tpart.Decode",
			Offset:    offset,
			Needed:    width,
			Remaining: len(buf) - offset,
		}
	}

	reader := lbytes.NewBytesReader(buf[offset : offset+width])
	record := Record{Kind: kind}

	common, err := decodeHead(reader)
	if err != nil {
		return Record{}, 0, errors.Wrap(err, "tpart.Decode error: read head")
	}
	record.Common = *common

	switch kind {
	case ttype.KindBelt:
		record.Belt, err = decodeBelt(reader)
	case ttype.KindRope:
		record.Rope, err = decodeRope(reader)
	case ttype.KindPulley:
		record.Pulley, err = decodePulley(reader)
	default:
		record.Anchors, err = decodeAnchors(reader)
	}
	if err != nil {
		return Record{}, 0, errors.Wrapf(err, "tpart.Decode error: read %s tail", kind)
	}

	tail, err := decodeTrailer(reader)
	if err != nil {
		return Record{}, 0, errors.Wrap(err, "tpart.Decode error: read trailer")
	}
	record.Common.Connected1 = tail.Connected1
	record.Common.Connected2 = tail.Connected2
	record.Common.OutletPlugged1 = tail.OutletPlugged1
	record.Common.OutletPlugged2 = tail.OutletPlugged2

	if kind == ttype.KindProgrammableBall {
		record.Ball, err = decodeProgrammableBall(reader)
		if err != nil {
			return Record{}, 0, errors.Wrap(err, "tpart.Decode error: read programmable ball")
		}
	}

	if reader.Len() != 0 {
		return Record{}, 0, terror.ErrUnreachableCode{Caller: "tpart.Decode"}
	}

	return record, width, nil
}

func decodeHead(reader *lbytes.Reader) (*Common, error) {
	readU16 := lbytes.CreateU16ReadFunction(reader)
	readI16 := lbytes.CreateI16ReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "type", ReadFunction: readU16},
		{Key: "flags_1", ReadFunction: readU16},
		{Key: "flags_2", ReadFunction: readU16},
		{Key: "flags_3", ReadFunction: readU16},
		{Key: "appearance", ReadFunction: readU16},
		{Key: "unknown_10", ReadFunction: readU16},
		{Key: "width_1", ReadFunction: readU16},
		{Key: "height_1", ReadFunction: readU16},
		{Key: "width_2", ReadFunction: readU16},
		{Key: "height_2", ReadFunction: readU16},
		{Key: "pos_x", ReadFunction: readI16},
		{Key: "pos_y", ReadFunction: readI16},
		{Key: "behavior", ReadFunction: readU16},
		{Key: "unknown_26", ReadFunction: readU16},
	}
	return lbytes.ExecuteInstructions[Common](instructions)
}

func decodeAnchors(reader *lbytes.Reader) (*Anchors, error) {
	readU8 := lbytes.CreateU8ReadFunction(reader)
	readU16 := lbytes.CreateU16ReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "belt_x", ReadFunction: readU8},
		{Key: "belt_y", ReadFunction: readU8},
		{Key: "belt_line_distance", ReadFunction: readU16},
		{Key: "unknown_32", ReadFunction: readU16},
		{Key: "rope_1_x", ReadFunction: readU8},
		{Key: "rope_1_y", ReadFunction: readU8},
		{Key: "unknown_36", ReadFunction: readU16},
		{Key: "rope_2_x", ReadFunction: readU8},
		{Key: "rope_2_y", ReadFunction: readU8},
	}
	return lbytes.ExecuteInstructions[Anchors](instructions)
}

func decodeBelt(reader *lbytes.Reader) (*Belt, error) {
	readU16 := lbytes.CreateU16ReadFunction(reader)
	readI16 := lbytes.CreateI16ReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "unknown_28", ReadFunction: readU16},
		{Key: "unknown_30", ReadFunction: readU16},
		{Key: "belt_connected_part_1", ReadFunction: readI16},
		{Key: "belt_connected_part_2", ReadFunction: readI16},
		{Key: "unknown_36", ReadFunction: readU16},
		{Key: "unknown_38", ReadFunction: readU16},
		{Key: "unknown_40", ReadFunction: readU16},
		{Key: "unknown_42", ReadFunction: readU16},
	}
	return lbytes.ExecuteInstructions[Belt](instructions)
}

func decodeRope(reader *lbytes.Reader) (*Rope, error) {
	readU8 := lbytes.CreateU8ReadFunction(reader)
	readU16 := lbytes.CreateU16ReadFunction(reader)
	readI16 := lbytes.CreateI16ReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "unknown_28", ReadFunction: readU16},
		{Key: "unknown_30", ReadFunction: readU16},
		{Key: "rope_connected_part_1", ReadFunction: readI16},
		{Key: "rope_connected_part_2", ReadFunction: readI16},
		{Key: "field_usage_1", ReadFunction: readU8},
		{Key: "field_usage_2", ReadFunction: readU8},
		{Key: "segment_length", ReadFunction: readU16},
		{Key: "unknown_40", ReadFunction: readU16},
		{Key: "unknown_42", ReadFunction: readU16},
		{Key: "unknown_44", ReadFunction: readU16},
	}
	return lbytes.ExecuteInstructions[Rope](instructions)
}

func decodePulley(reader *lbytes.Reader) (*Pulley, error) {
	readU16 := lbytes.CreateU16ReadFunction(reader)
	readI16 := lbytes.CreateI16ReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "unknown_28", ReadFunction: readU16},
		{Key: "unknown_30", ReadFunction: readU16},
		{Key: "unknown_32", ReadFunction: readU16},
		{Key: "rope_index", ReadFunction: readI16},
		{Key: "pulley_connected_part_1", ReadFunction: readI16},
		{Key: "pulley_connected_part_2", ReadFunction: readI16},
		{Key: "unknown_40", ReadFunction: readU16},
		{Key: "unknown_42", ReadFunction: readU16},
		{Key: "unknown_44", ReadFunction: readU16},
		{Key: "unknown_46", ReadFunction: readU16},
	}
	return lbytes.ExecuteInstructions[Pulley](instructions)
}

func decodeTrailer(reader *lbytes.Reader) (*trailer, error) {
	readI16 := lbytes.CreateI16ReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "connected_1", ReadFunction: readI16},
		{Key: "connected_2", ReadFunction: readI16},
		{Key: "outlet_plugged_1", ReadFunction: readI16},
		{Key: "outlet_plugged_2", ReadFunction: readI16},
	}
	return lbytes.ExecuteInstructions[trailer](instructions)
}

func decodeProgrammableBall(reader *lbytes.Reader) (*ProgrammableBall, error) {
	readU16 := lbytes.CreateU16ReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "density", ReadFunction: readU16},
		{Key: "elasticity", ReadFunction: readU16},
		{Key: "friction", ReadFunction: readU16},
		{Key: "gravity_buoyancy", ReadFunction: readU16},
		{Key: "mass", ReadFunction: readU16},
		{Key: "appearance_2", ReadFunction: readU16},
	}
	return lbytes.ExecuteInstructions[ProgrammableBall](instructions)
}
