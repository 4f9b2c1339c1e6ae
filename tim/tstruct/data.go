package tstruct

import (
	"contraption/tim/theader"
	"contraption/tim/thint"
	"contraption/tim/tpart"
	"contraption/tim/tsettings"
	"contraption/tim/tsolution"
	"github.com/charmbracelet/log"
)

type (
	// Level is a whole decoded file. Moving parts are stored before fixed
	// parts on disk; the counts in Settings are derived from the slices when
	// encoding.
	Level struct {
		Header      theader.Header     `json:"header"`
		Hints       thint.Block        `json:"hints"`
		Settings    tsettings.Settings `json:"settings"`
		MovingParts []tpart.Record     `json:"moving_parts"`
		FixedParts  []tpart.Record     `json:"fixed_parts"`
		Solution    tsolution.Block    `json:"solution"`
	}
	// Options tune how strictly Decode treats malformed input. The zero value
	// warns on a bad magic number and fails on a length mismatch.
	Options struct {
		Logger *log.Logger
		// StrictMagic makes a magic number mismatch fatal.
		StrictMagic bool
		// LenientLength only warns about trailing bytes after the solution
		// block. A shortfall is always fatal.
		LenientLength bool
	}
)

// NewLevel returns an empty level with editor defaults.
func NewLevel(title string, description string) Level {
	return Level{
		Header: theader.Header{
			MagicNumber: theader.MagicNumber,
			Title:       title,
			Description: description,
		},
		Settings:    tsettings.Default(),
		MovingParts: []tpart.Record{},
		FixedParts:  []tpart.Record{},
		Solution:    tsolution.EmptyBlock(),
	}
}

// Parts returns every record in file order.
func (l Level) Parts() []tpart.Record {
	parts := make([]tpart.Record, 0, len(l.MovingParts)+len(l.FixedParts))
	parts = append(parts, l.MovingParts...)
	parts = append(parts, l.FixedParts...)
	return parts
}

// GetLogger falls back to the charm default logger.
func (o Options) GetLogger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}
