package tstruct

import (
	"io"

	"contraption/tim/lbytes"
	"contraption/tim/terror"
	"contraption/tim/theader"
	"contraption/tim/thint"
	"contraption/tim/tpart"
	"contraption/tim/tsettings"
	"contraption/tim/tsolution"
	"contraption/tim/ttype"
	"github.com/pkg/errors"
)

func Decode(bs []byte, opts Options) (*Level, error) {
	logger := opts.GetLogger()
	reader := lbytes.NewBytesReader(bs)
	level := Level{}

	header, mismatch, err := theader.Decode(reader)
	if err != nil {
		return nil, errors.Wrap(err, "tstruct.Decode error")
	}
	if mismatch != nil {
		if opts.StrictMagic {
			return nil, errors.Wrap(*mismatch, "tstruct.Decode error")
		}
		logger.Warn("magic number mismatch, decoding anyway", "expected", mismatch.Expected, "actual", mismatch.Actual)
	}
	level.Header = *header

	hints, err := thint.DecodeBlock(reader)
	if err != nil {
		return nil, errors.Wrap(err, "tstruct.Decode error")
	}
	level.Hints = *hints

	settings, err := tsettings.Decode(reader)
	if err != nil {
		return nil, errors.Wrap(err, "tstruct.Decode error")
	}
	level.Settings = *settings

	parts, offset, err := DecodeParts(bs, reader.Offset(), settings.NumParts(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "tstruct.Decode error")
	}
	level.MovingParts = parts[:settings.NumMoving:settings.NumMoving]
	level.FixedParts = parts[settings.NumMoving:]

	if _, err := reader.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "tstruct.Decode error")
	}
	solution, err := tsolution.DecodeBlock(reader)
	var truncated terror.ErrTruncatedBuffer
	if errors.As(err, &truncated) {
		return nil, terror.ErrLengthMismatch{
			Caller:   "tstruct.Decode",
			Expected: offset + tsolution.BlockSize,
			Actual:   len(bs),
		}
	}
	if err != nil {
		return nil, errors.Wrap(err, "tstruct.Decode error")
	}
	level.Solution = *solution

	if reader.Len() != 0 {
		mismatch := terror.ErrLengthMismatch{
			Caller:   "tstruct.Decode",
			Expected: reader.Offset(),
			Actual:   len(bs),
		}
		if !opts.LenientLength {
			return nil, mismatch
		}
		logger.Warn("trailing bytes after solution block", "count", reader.Len())
	}

	return &level, nil
}

// DecodeParts reads n records starting at offset and returns them along with
// the offset right after the last one. Records are not at a fixed stride.
func DecodeParts(bs []byte, offset int, n int, opts Options) ([]tpart.Record, int, error) {
	logger := opts.GetLogger()
	parts := make([]tpart.Record, 0, n)
	for i := 0; i < n; i++ {
		record, width, err := tpart.Decode(bs, offset)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "tstruct.DecodeParts error: part %d", i)
		}
		tag := record.Tag()
		if tag != ttype.EmptySlotTag && !ttype.IsKnown(tag) {
			unknown := terror.ErrUnknownTypeTag{Tag: tag, Offset: offset}
			logger.Warn(unknown.Error(), "part", i, "fallback", record.Kind)
		}
		parts = append(parts, record)
		offset += width
	}
	return parts, offset, nil
}
