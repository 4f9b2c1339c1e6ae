package tdoc

import (
	"contraption/tim/tpart"
	"contraption/tim/ttype"
)

// Pointer fields are either required keys, whose absence must be told apart
// from a zero value, or fields whose default is not zero. Plain fields with
// omitempty default to zero.
type (
	Document struct {
		Version        *int            `json:"version"`
		MagicNumber    *uint32         `json:"magic,omitempty"`
		Title          *string         `json:"title"`
		Description    *string         `json:"description"`
		Background     *Background     `json:"background"`
		GlobalSettings *GlobalSettings `json:"global_settings"`
		Hints          *Hints          `json:"hints,omitempty"`
		Parts          []Part          `json:"parts"`
		Solution       *Solution       `json:"solution,omitempty"`
	}
	Background struct {
		Color   uint8 `json:"color"`
		Unknown uint8 `json:"unknown,omitempty"`
	}
	GlobalSettings struct {
		Pressure  *int16  `json:"pressure"`
		Gravity   *int16  `json:"gravity"`
		Music     *uint16 `json:"music"`
		NumMoving *uint16 `json:"num_moving,omitempty"`
		Unknown4  uint16  `json:"unknown_4,omitempty"`
		Unknown6  uint16  `json:"unknown_6,omitempty"`
		Unknown14 uint16  `json:"unknown_14,omitempty"`
	}
	Hints struct {
		Count uint16     `json:"count"`
		Slots []HintSlot `json:"slots,omitempty"`
	}
	HintSlot struct {
		X    uint16 `json:"x"`
		Y    uint16 `json:"y"`
		Flip uint16 `json:"flip"`
		Text uint8  `json:"text"`
	}
	Part struct {
		PartType             *string                 `json:"part_type"`
		Position             *Position               `json:"position"`
		Flags1               *uint16                 `json:"flags_1,omitempty"`
		Flags2               *uint16                 `json:"flags_2,omitempty"`
		Flags3               *uint16                 `json:"flags_3,omitempty"`
		Size                 *ttype.Size             `json:"size,omitempty"`
		Appearance           uint16                  `json:"appearance,omitempty"`
		Behavior             uint16                  `json:"behavior,omitempty"`
		Unknown10            uint16                  `json:"unknown_10,omitempty"`
		Unknown26            uint16                  `json:"unknown_26,omitempty"`
		BeltConnection       *BeltConnection         `json:"belt_connection,omitempty"`
		Rope1Connection      *RopeConnection         `json:"rope_1_connection,omitempty"`
		Rope2Connection      *RopeConnection         `json:"rope_2_connection,omitempty"`
		Connected1           *int16                  `json:"connected_1,omitempty"`
		Connected2           *int16                  `json:"connected_2,omitempty"`
		OutletPlugged1       *int16                  `json:"outlet_plugged_1,omitempty"`
		OutletPlugged2       *int16                  `json:"outlet_plugged_2,omitempty"`
		BeltData             *BeltData               `json:"belt_data,omitempty"`
		RopeData             *RopeData               `json:"rope_data,omitempty"`
		PulleyData           *PulleyData             `json:"pulley_data,omitempty"`
		ProgrammableBallData *tpart.ProgrammableBall `json:"programmable_ball_data,omitempty"`
	}
	Position struct {
		X int16 `json:"x"`
		Y int16 `json:"y"`
	}
	BeltConnection struct {
		X            uint8  `json:"x"`
		Y            uint8  `json:"y"`
		LineDistance uint16 `json:"line_distance,omitempty"`
		Unknown      uint16 `json:"unknown,omitempty"`
	}
	RopeConnection struct {
		X       uint8  `json:"x"`
		Y       uint8  `json:"y"`
		Unknown uint16 `json:"unknown,omitempty"`
	}
	BeltData struct {
		Unknown28      uint16 `json:"unknown_28,omitempty"`
		Unknown30      uint16 `json:"unknown_30,omitempty"`
		ConnectedPart1 *int16 `json:"connected_part_1,omitempty"`
		ConnectedPart2 *int16 `json:"connected_part_2,omitempty"`
		Unknown36      uint16 `json:"unknown_36,omitempty"`
		Unknown38      uint16 `json:"unknown_38,omitempty"`
		Unknown40      uint16 `json:"unknown_40,omitempty"`
		Unknown42      uint16 `json:"unknown_42,omitempty"`
	}
	RopeData struct {
		Unknown28      uint16 `json:"unknown_28,omitempty"`
		Unknown30      uint16 `json:"unknown_30,omitempty"`
		ConnectedPart1 *int16 `json:"connected_part_1,omitempty"`
		ConnectedPart2 *int16 `json:"connected_part_2,omitempty"`
		FieldUsage1    uint8  `json:"field_usage_1,omitempty"`
		FieldUsage2    uint8  `json:"field_usage_2,omitempty"`
		SegmentLength  uint16 `json:"segment_length,omitempty"`
		Unknown40      uint16 `json:"unknown_40,omitempty"`
		Unknown42      uint16 `json:"unknown_42,omitempty"`
		Unknown44      uint16 `json:"unknown_44,omitempty"`
	}
	PulleyData struct {
		Unknown28      uint16 `json:"unknown_28,omitempty"`
		Unknown30      uint16 `json:"unknown_30,omitempty"`
		Unknown32      uint16 `json:"unknown_32,omitempty"`
		RopeIndex      *int16 `json:"rope_index,omitempty"`
		ConnectedPart1 *int16 `json:"connected_part_1,omitempty"`
		ConnectedPart2 *int16 `json:"connected_part_2,omitempty"`
		Unknown40      uint16 `json:"unknown_40,omitempty"`
		Unknown42      uint16 `json:"unknown_42,omitempty"`
		Unknown44      uint16 `json:"unknown_44,omitempty"`
		Unknown46      uint16 `json:"unknown_46,omitempty"`
	}
	Solution struct {
		Count      *uint16     `json:"count,omitempty"`
		Conditions []Condition `json:"conditions"`
		Delay      uint16      `json:"delay,omitempty"`
	}
	Condition struct {
		PartIndex  *int16 `json:"part_index"`
		State1     uint16 `json:"state_1,omitempty"`
		State2     uint16 `json:"state_2,omitempty"`
		PartCount  uint16 `json:"part_count,omitempty"`
		RectX      int16  `json:"rect_x,omitempty"`
		RectY      int16  `json:"rect_y,omitempty"`
		RectWidth  int16  `json:"rect_width,omitempty"`
		RectHeight int16  `json:"rect_height,omitempty"`
	}
)

const Version = 1
