package ttype

type (
	// Kind is the record layout a type tag selects.
	Kind int
	// Flags holds the three flag words of a part record.
	Flags struct {
		Flags1 uint16 `json:"flags_1"`
		Flags2 uint16 `json:"flags_2"`
		Flags3 uint16 `json:"flags_3"`
	}
	// Size holds the two width/height pairs of a part record.
	Size struct {
		Width1  uint16 `json:"width_1"`
		Height1 uint16 `json:"height_1"`
		Width2  uint16 `json:"width_2"`
		Height2 uint16 `json:"height_2"`
	}
	entry struct {
		Name  string
		Flags Flags
		Size  Size
	}
)

const (
	KindBase Kind = iota
	KindBelt
	KindRope
	KindPulley
	KindProgrammableBall
)

const (
	PulleyTag           uint16 = 6
	BeltTag             uint16 = 7
	RopeTag             uint16 = 10
	ProgrammableBallTag uint16 = 72
	EmptySlotTag        uint16 = 0xFFFF

	EmptySlotName = "empty"

	// MovingFlag is set in Flags1 of parts that belong to the moving group.
	MovingFlag uint16 = 0x1000
)

const (
	BaseWidth             = 48
	BeltWidth             = 52
	RopeWidth             = 54
	PulleyWidth           = 56
	ProgrammableBallWidth = 60
)

var (
	FallbackFlags = Flags{Flags1: 0x6000, Flags2: 0x0000, Flags3: 0x0008}
	FallbackSize  = Size{Width1: 32, Height1: 32, Width2: 32, Height2: 32}
)

var (
	movingFlags = Flags{Flags1: 0x1000, Flags2: 0x0000, Flags3: 0x8008}
	fixedFlags  = FallbackFlags
	linkFlags   = Flags{Flags1: 0x0800, Flags2: 0x0000, Flags3: 0x0000}
	square16    = Size{16, 16, 16, 16}
	square32    = Size{32, 32, 32, 32}
)

// entries must never be written to after package initialization.
var entries = map[uint16]entry{
	0:                   {"brick_wall", fixedFlags, square16},
	1:                   {"incline", Flags{0x6000, 0x0000, 0x0048}, Size{32, 16, 32, 16}},
	2:                   {"teeter_totter", Flags{0x5000, 0x0000, 0x0008}, Size{64, 24, 64, 24}},
	3:                   {"balloon", movingFlags, Size{32, 48, 32, 48}},
	4:                   {"conveyor_belt", Flags{0x6000, 0x0040, 0x0008}, Size{64, 16, 64, 16}},
	5:                   {"mouse_cage", Flags{0x4000, 0x0000, 0x0008}, Size{48, 32, 48, 32}},
	PulleyTag:           {"pulley", Flags{0x4000, 0x0000, 0x0008}, square16},
	BeltTag:             {"belt", linkFlags, Size{}},
	8:                   {"basketball", movingFlags, square32},
	9:                   {"bowling_ball", movingFlags, square32},
	RopeTag:             {"rope", linkFlags, Size{}},
	11:                  {"gear", Flags{0x4000, 0x0040, 0x0008}, square32},
	12:                  {"baseball", movingFlags, square16},
	13:                  {"pipe_straight", fixedFlags, Size{32, 16, 32, 16}},
	14:                  {"dynamite", Flags{0x1000, 0x0000, 0x0008}, square16},
	15:                  {"scissors", Flags{0x4000, 0x0000, 0x0008}, Size{32, 16, 32, 16}},
	16:                  {"electric_motor", Flags{0x4000, 0x0040, 0x0008}, Size{48, 32, 48, 32}},
	17:                  {"trampoline", fixedFlags, Size{48, 16, 48, 16}},
	18:                  {"bucket", movingFlags, Size{32, 32, 32, 32}},
	19:                  {"candle", Flags{0x4000, 0x0000, 0x0008}, Size{16, 32, 16, 32}},
	20:                  {"fan", Flags{0x4000, 0x0040, 0x0008}, square32},
	ProgrammableBallTag: {"programmable_ball", movingFlags, square32},
}

var tagsByName = func() map[string]uint16 {
	result := make(map[string]uint16, len(entries)+1)
	for tag, e := range entries {
		result[e.Name] = tag
	}
	result[EmptySlotName] = EmptySlotTag
	return result
}()
