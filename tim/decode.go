package tim

import (
	"contraption/tim/tdoc"
	"contraption/tim/theader"
	"contraption/tim/tstruct"
)

// IsTIM sniffs the magic number of bs.
func IsTIM(bs []byte) bool {
	return theader.IsValidMagicNumber(bs)
}

// DecodeTIM converts a level file into its JSON document. With debug set,
// the full decoded structure is dumped instead of the sparse document.
func DecodeTIM(bs []byte, opts tstruct.Options, indent string, debug bool) ([]byte, error) {
	level, err := tstruct.Decode(bs, opts)
	if err != nil {
		return nil, err
	}
	if err := level.Settings.Validate(); err != nil {
		opts.GetLogger().Warn("level settings out of editor range", "err", err)
	}

	if debug {
		return marshalIndent(level, indent)
	}

	return tdoc.Marshal(tdoc.ToDocument(*level), indent)
}
