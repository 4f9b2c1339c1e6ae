// Package ttype maps part type tags to their record layout and to the
// per-type defaults used when eliding document fields.
//
// Unknown tags are legal: they resolve to the base layout and to the
// fallback defaults.
package ttype

import (
	"strconv"
)

func ResolveKind(tag uint16) Kind {
	switch tag {
	case BeltTag:
		return KindBelt
	case RopeTag:
		return KindRope
	case PulleyTag:
		return KindPulley
	case ProgrammableBallTag:
		return KindProgrammableBall
	default:
		return KindBase
	}
}

func DefaultFlags(tag uint16) Flags {
	e, ok := entries[tag]
	if !ok {
		return FallbackFlags
	}
	return e.Flags
}

func DefaultSize(tag uint16) Size {
	e, ok := entries[tag]
	if !ok {
		return FallbackSize
	}
	return e.Size
}

// IsKnown reports whether tag has a registry entry. The empty slot tag is
// not an entry.
func IsKnown(tag uint16) bool {
	_, ok := entries[tag]
	return ok
}

// Name returns the part name of tag, or its decimal value when unknown.
func Name(tag uint16) string {
	if tag == EmptySlotTag {
		return EmptySlotName
	}
	if e, ok := entries[tag]; ok {
		return e.Name
	}
	return strconv.Itoa(int(tag))
}

// TagByName is the inverse of Name.
func TagByName(name string) (uint16, bool) {
	if tag, ok := tagsByName[name]; ok {
		return tag, true
	}
	tag, err := strconv.ParseUint(name, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(tag), true
}

func IsMoving(flags1 uint16) bool {
	return flags1&MovingFlag != 0
}

func (k Kind) Width() int {
	switch k {
	case KindBelt:
		return BeltWidth
	case KindRope:
		return RopeWidth
	case KindPulley:
		return PulleyWidth
	case KindProgrammableBall:
		return ProgrammableBallWidth
	default:
		return BaseWidth
	}
}

func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindBelt:
		return "belt"
	case KindRope:
		return "rope"
	case KindPulley:
		return "pulley"
	case KindProgrammableBall:
		return "programmable_ball"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}
