package tdoc

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

func Marshal(doc Document, indent string) ([]byte, error) {
	bs, err := json.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, errors.Wrap(err, "tdoc.Marshal error")
	}
	return bs, nil
}

// Unmarshal rejects keys the document does not define, so a misspelled key
// cannot silently fall back to a default.
func Unmarshal(bs []byte) (*Document, error) {
	decoder := json.NewDecoder(bytes.NewReader(bs))
	decoder.DisallowUnknownFields()
	doc := Document{}
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "tdoc.Unmarshal error")
	}
	return &doc, nil
}
