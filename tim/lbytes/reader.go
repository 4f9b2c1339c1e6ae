package lbytes

import (
	"bytes"
	"encoding/binary"

	"contraption/tim/terror"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// Offset returns the position of the next unread byte.
func (b *Reader) Offset() int {
	return int(b.Size()) - b.Len()
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	if b.Len() < n {
		return nil, terror.ErrTruncatedBuffer{
			Caller:    "lbytes.ReadBytes",
			Offset:    b.Offset(),
			Needed:    n,
			Remaining: b.Len(),
		}
	}
	_, err := b.Read(bs)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (b *Reader) ReadU8() (uint8, error) {
	bs, err := b.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

func (b *Reader) ReadU16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadI16() (int16, error) {
	result, err := b.ReadU16()
	if err != nil {
		return 0, err
	}
	return int16(result), nil
}

func (b *Reader) ReadU32BE() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(bs), nil
}

// ReadCString reads up to and including the next zero byte. The zero byte is
// not part of the result.
func (b *Reader) ReadCString() (string, error) {
	offset := b.Offset()
	buf := bytes.Buffer{}
	for {
		c, err := b.ReadByte()
		if err != nil {
			return "", terror.ErrTruncatedBuffer{
				Caller:    "lbytes.ReadCString",
				Offset:    offset,
				Needed:    buf.Len() + 1,
				Remaining: buf.Len(),
			}
		}
		if c == 0 {
			return buf.String(), nil
		}
		buf.WriteByte(c)
	}
}
