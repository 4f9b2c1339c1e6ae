package tim

import (
	"encoding/json"

	"contraption/tim/tdoc"
	"contraption/tim/tstruct"
	"github.com/pkg/errors"
)

// EncodeJSON converts a JSON document back into level file bytes.
func EncodeJSON(bs []byte) ([]byte, error) {
	doc, err := tdoc.Unmarshal(bs)
	if err != nil {
		return nil, err
	}
	level, err := tdoc.FromDocument(*doc)
	if err != nil {
		return nil, err
	}
	return tstruct.Encode(*level)
}

func marshalIndent(v any, indent string) ([]byte, error) {
	bs, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return nil, errors.Wrap(err, "tim.marshalIndent error")
	}
	return bs, nil
}
