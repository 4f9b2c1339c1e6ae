package lbytes

import (
	"encoding/binary"
)

func EncodeU8(value uint8) []byte {
	return []byte{value}
}

func EncodeU16(value uint16) []byte {
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, value)
	return bs
}

func EncodeI16(value int16) []byte {
	return EncodeU16(uint16(value))
}

func EncodeU32BE(value uint32) []byte {
	bs := make([]byte, 4)
	binary.BigEndian.PutUint32(bs, value)
	return bs
}

func EncodeCString(value string) []byte {
	// +1 to account for the last zero byte
	bs := make([]byte, 0, len(value)+1)
	bs = append(bs, value...)
	bs = append(bs, '\u0000')
	return bs
}

func CreateZeroBytes(n int) []byte {
	return make([]byte, n)
}
