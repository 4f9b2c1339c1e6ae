package tsettings

import (
	"fmt"

	"contraption/tim/lbytes"
	"github.com/pkg/errors"
)

// Default returns the settings the editor uses for a new level.
func Default() Settings {
	return Settings{
		Pressure: DefaultPressure,
		Gravity:  DefaultGravity,
		Music:    MinMusic,
	}
}

func IsValidMusic(music uint16) bool {
	return music >= MinMusic && music <= MaxMusic
}

// Validate checks the ranges the editor accepts. Decoding never calls it.
func (s Settings) Validate() error {
	if !IsValidMusic(s.Music) {
		return fmt.Errorf("music code %d is outside %d-%d", s.Music, MinMusic, MaxMusic)
	}
	return nil
}

func (s Settings) NumParts() int {
	return int(s.NumFixed) + int(s.NumMoving)
}

func Decode(reader *lbytes.Reader) (*Settings, error) {
	readU16 := lbytes.CreateU16ReadFunction(reader)
	readI16 := lbytes.CreateI16ReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "pressure", ReadFunction: readI16},
		{Key: "gravity", ReadFunction: readI16},
		{Key: "unknown_4", ReadFunction: readU16},
		{Key: "unknown_6", ReadFunction: readU16},
		{Key: "music", ReadFunction: readU16},
		{Key: "num_fixed", ReadFunction: readU16},
		{Key: "num_moving", ReadFunction: readU16},
		{Key: "unknown_14", ReadFunction: readU16},
	}
	settings, err := lbytes.ExecuteInstructions[Settings](instructions)
	if err != nil {
		return nil, errors.Wrap(err, "tsettings.Decode error")
	}
	return settings, nil
}

func Encode(settings Settings) []byte {
	bs := make([]byte, 0, Size)
	bs = append(bs, lbytes.EncodeI16(settings.Pressure)...)
	bs = append(bs, lbytes.EncodeI16(settings.Gravity)...)
	bs = append(bs, lbytes.EncodeU16(settings.Unknown4)...)
	bs = append(bs, lbytes.EncodeU16(settings.Unknown6)...)
	bs = append(bs, lbytes.EncodeU16(settings.Music)...)
	bs = append(bs, lbytes.EncodeU16(settings.NumFixed)...)
	bs = append(bs, lbytes.EncodeU16(settings.NumMoving)...)
	bs = append(bs, lbytes.EncodeU16(settings.Unknown14)...)
	return bs
}
