package tpart

import (
	"contraption/tim/ttype"
)

type (
	// Record is one part record. Kind selects which of the tail pointers is
	// set: Anchors for the base kind, Anchors and Ball for programmable
	// balls, and exactly one of Belt, Rope or Pulley otherwise.
	Record struct {
		Kind    ttype.Kind        `json:"kind"`
		Common  Common            `json:"common"`
		Anchors *Anchors          `json:"anchors,omitempty"`
		Belt    *Belt             `json:"belt,omitempty"`
		Rope    *Rope             `json:"rope,omitempty"`
		Pulley  *Pulley           `json:"pulley,omitempty"`
		Ball    *ProgrammableBall `json:"ball,omitempty"`
	}
	// Common holds the fields every kind shares: the 28 leading bytes and the
	// 8 trailing bytes of connection references.
	Common struct {
		Type           uint16 `json:"type"`
		Flags1         uint16 `json:"flags_1"`
		Flags2         uint16 `json:"flags_2"`
		Flags3         uint16 `json:"flags_3"`
		Appearance     uint16 `json:"appearance"`
		Unknown10      uint16 `json:"unknown_10"`
		Width1         uint16 `json:"width_1"`
		Height1        uint16 `json:"height_1"`
		Width2         uint16 `json:"width_2"`
		Height2        uint16 `json:"height_2"`
		X              int16  `json:"pos_x"`
		Y              int16  `json:"pos_y"`
		Behavior       uint16 `json:"behavior"`
		Unknown26      uint16 `json:"unknown_26"`
		Connected1     int16  `json:"connected_1"`
		Connected2     int16  `json:"connected_2"`
		OutletPlugged1 int16  `json:"outlet_plugged_1"`
		OutletPlugged2 int16  `json:"outlet_plugged_2"`
	}
	// Anchors are the belt and rope attachment points of parts that can be
	// connected to.
	Anchors struct {
		BeltX            uint8  `json:"belt_x"`
		BeltY            uint8  `json:"belt_y"`
		BeltLineDistance uint16 `json:"belt_line_distance"`
		Unknown32        uint16 `json:"unknown_32"`
		Rope1X           uint8  `json:"rope_1_x"`
		Rope1Y           uint8  `json:"rope_1_y"`
		Unknown36        uint16 `json:"unknown_36"`
		Rope2X           uint8  `json:"rope_2_x"`
		Rope2Y           uint8  `json:"rope_2_y"`
	}
	Belt struct {
		Unknown28      uint16 `json:"unknown_28"`
		Unknown30      uint16 `json:"unknown_30"`
		ConnectedPart1 int16  `json:"belt_connected_part_1"`
		ConnectedPart2 int16  `json:"belt_connected_part_2"`
		Unknown36      uint16 `json:"unknown_36"`
		Unknown38      uint16 `json:"unknown_38"`
		Unknown40      uint16 `json:"unknown_40"`
		Unknown42      uint16 `json:"unknown_42"`
	}
	Rope struct {
		Unknown28      uint16 `json:"unknown_28"`
		Unknown30      uint16 `json:"unknown_30"`
		ConnectedPart1 int16  `json:"rope_connected_part_1"`
		ConnectedPart2 int16  `json:"rope_connected_part_2"`
		FieldUsage1    uint8  `json:"field_usage_1"`
		FieldUsage2    uint8  `json:"field_usage_2"`
		SegmentLength  uint16 `json:"segment_length"`
		Unknown40      uint16 `json:"unknown_40"`
		Unknown42      uint16 `json:"unknown_42"`
		Unknown44      uint16 `json:"unknown_44"`
	}
	Pulley struct {
		Unknown28      uint16 `json:"unknown_28"`
		Unknown30      uint16 `json:"unknown_30"`
		Unknown32      uint16 `json:"unknown_32"`
		RopeIndex      int16  `json:"rope_index"`
		ConnectedPart1 int16  `json:"pulley_connected_part_1"`
		ConnectedPart2 int16  `json:"pulley_connected_part_2"`
		Unknown40      uint16 `json:"unknown_40"`
		Unknown42      uint16 `json:"unknown_42"`
		Unknown44      uint16 `json:"unknown_44"`
		Unknown46      uint16 `json:"unknown_46"`
	}
	ProgrammableBall struct {
		Density         uint16 `json:"density"`
		Elasticity      uint16 `json:"elasticity"`
		Friction        uint16 `json:"friction"`
		GravityBuoyancy uint16 `json:"gravity_buoyancy"`
		Mass            uint16 `json:"mass"`
		Appearance2     uint16 `json:"appearance_2"`
	}
)

const (
	// NoPart marks an unset reference field. Zero is a valid part index.
	NoPart int16 = -1

	MaxX = 560
	MaxY = 377
)

func DefaultBelt() Belt {
	return Belt{ConnectedPart1: NoPart, ConnectedPart2: NoPart}
}

func DefaultRope() Rope {
	return Rope{ConnectedPart1: NoPart, ConnectedPart2: NoPart}
}

func DefaultPulley() Pulley {
	return Pulley{RopeIndex: NoPart, ConnectedPart1: NoPart, ConnectedPart2: NoPart}
}

func (r Record) Tag() uint16 {
	return r.Common.Type
}

func (r Record) Width() int {
	return r.Kind.Width()
}

// IsMoving reports whether the record's flags mark it as a moving part.
func (r Record) IsMoving() bool {
	return ttype.IsMoving(r.Common.Flags1)
}
