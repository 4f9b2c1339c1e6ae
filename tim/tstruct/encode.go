package tstruct

import (
	"math"

	"contraption/tim/terror"
	"contraption/tim/theader"
	"contraption/tim/thint"
	"contraption/tim/tpart"
	"contraption/tim/tsettings"
	"contraption/tim/tsolution"
	"github.com/samber/lo"
)

func CalculatePartsSize(parts []tpart.Record) int {
	return lo.SumBy(
		parts,
		func(part tpart.Record) int { return part.Width() },
	)
}

func CalculateSize(level Level) int {
	return theader.CalculateSize(level.Header) +
		thint.BlockSize +
		tsettings.Size +
		CalculatePartsSize(level.MovingParts) +
		CalculatePartsSize(level.FixedParts) +
		tsolution.BlockSize
}

func Encode(level Level) ([]byte, error) {
	if err := theader.Validate(level.Header); err != nil {
		return nil, err
	}
	if len(level.MovingParts) > math.MaxUint16 {
		return nil, terror.ErrCountOverflow{
			Caller: "tstruct.Encode",
			Field:  "moving parts",
			Limit:  math.MaxUint16,
			Actual: len(level.MovingParts),
		}
	}
	if len(level.FixedParts) > math.MaxUint16 {
		return nil, terror.ErrCountOverflow{
			Caller: "tstruct.Encode",
			Field:  "fixed parts",
			Limit:  math.MaxUint16,
			Actual: len(level.FixedParts),
		}
	}
	totalSize := CalculateSize(level)

	settings := level.Settings
	settings.NumMoving = uint16(len(level.MovingParts))
	settings.NumFixed = uint16(len(level.FixedParts))

	bs := make([]byte, 0, totalSize)
	bs = append(bs, theader.Encode(level.Header)...)
	bs = append(bs, thint.EncodeBlock(level.Hints)...)
	bs = append(bs, tsettings.Encode(settings)...)
	for _, part := range level.MovingParts {
		bs = append(bs, tpart.Encode(part)...)
	}
	for _, part := range level.FixedParts {
		bs = append(bs, tpart.Encode(part)...)
	}
	bs = append(bs, tsolution.EncodeBlock(level.Solution)...)

	if len(bs) != totalSize {
		return nil, terror.ErrLengthMismatch{
			Caller:   "tstruct.Encode",
			Expected: totalSize,
			Actual:   len(bs),
		}
	}
	return bs, nil
}
