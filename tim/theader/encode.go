package theader

import (
	"strings"

	"contraption/tim/lbytes"
	"contraption/tim/terror"
)

func Encode(header Header) []byte {
	bs := make([]byte, 0, CalculateSize(header))
	bs = append(bs, lbytes.EncodeU32BE(header.MagicNumber)...)
	bs = append(bs, lbytes.EncodeU8(header.BackgroundUnknown)...)
	bs = append(bs, lbytes.EncodeU8(header.BackgroundColor)...)
	bs = append(bs, lbytes.EncodeCString(header.Title)...)
	bs = append(bs, lbytes.EncodeCString(header.Description)...)
	return bs
}

func CalculateSize(header Header) int {
	return FixedSize + len(header.Title) + 1 + len(header.Description) + 1
}

// Validate rejects strings the NUL-terminated layout cannot hold.
func Validate(header Header) error {
	if strings.IndexByte(header.Title, 0) >= 0 {
		return terror.ErrInvalidText{Caller: "theader.Validate", Field: "title", Reason: "contains a NUL byte"}
	}
	if strings.IndexByte(header.Description, 0) >= 0 {
		return terror.ErrInvalidText{Caller: "theader.Validate", Field: "description", Reason: "contains a NUL byte"}
	}
	return nil
}
