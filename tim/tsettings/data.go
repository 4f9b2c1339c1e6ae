package tsettings

type (
	Settings struct {
		Pressure  int16  `json:"pressure"`
		Gravity   int16  `json:"gravity"`
		Unknown4  uint16 `json:"unknown_4"`
		Unknown6  uint16 `json:"unknown_6"`
		Music     uint16 `json:"music"`
		NumFixed  uint16 `json:"num_fixed"`
		NumMoving uint16 `json:"num_moving"`
		Unknown14 uint16 `json:"unknown_14"`
	}
)

const (
	Size = 16

	MinMusic uint16 = 1000
	MaxMusic uint16 = 1023

	DefaultPressure int16 = 67
	DefaultGravity  int16 = 272
)
