package theader

import (
	"contraption/tim/lbytes"
	"contraption/tim/terror"
	"github.com/pkg/errors"
)

func IsValidMagicNumber(bs []byte) bool {
	reader := lbytes.NewBytesReader(bs)
	magicNumber, err := reader.ReadU32BE()
	return err == nil && magicNumber == MagicNumber
}

// Decode reads the header. A wrong magic number is reported through the
// returned mismatch, which is nil when the magic number is valid; the caller
// decides whether it is fatal.
func Decode(reader *lbytes.Reader) (*Header, *terror.ErrMagicMismatch, error) {
	// manual decoding is needed since the strings are not guaranteed to be
	// valid UTF-8 and would not survive a trip through JSON
	header := Header{}
	err := error(nil)

	header.MagicNumber, err = reader.ReadU32BE()
	if err != nil {
		return nil, nil, errors.Wrap(err, "theader.Decode error: read magic number")
	}
	header.BackgroundUnknown, err = reader.ReadU8()
	if err != nil {
		return nil, nil, errors.Wrap(err, "theader.Decode error: read background")
	}
	header.BackgroundColor, err = reader.ReadU8()
	if err != nil {
		return nil, nil, errors.Wrap(err, "theader.Decode error: read background")
	}
	header.Title, err = reader.ReadCString()
	if err != nil {
		return nil, nil, errors.Wrap(err, "theader.Decode error: read title")
	}
	header.Description, err = reader.ReadCString()
	if err != nil {
		return nil, nil, errors.Wrap(err, "theader.Decode error: read description")
	}

	if header.MagicNumber != MagicNumber {
		return &header, &terror.ErrMagicMismatch{Expected: MagicNumber, Actual: header.MagicNumber}, nil
	}
	return &header, nil, nil
}
