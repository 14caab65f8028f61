package ta

import (
	"encoding/binary"
	"errors"
)

// Sizes of the two kinds of TA parameters.
const (
	ShortRecord = 32
	LongRecord  = 64
)

var ErrRecordSize = errors.New("ta: record must be 32 or 64 bytes")

// ParamType is bits 31..29 of a parameter control word.
type ParamType uint8

const (
	ParamEndOfList ParamType = iota
	ParamUserTileClip
	ParamObjectListSet
	_
	ParamPolygon // polygon or modifier volume header
	ParamSprite
	_
	ParamVertex
)

// ListType is bits 26..24 of a polygon or sprite header.
type ListType uint8

const (
	ListOpaque ListType = iota
	ListOpaqueModifier
	ListTranslucent
	ListTranslucentModifier
	ListPunchThrough
)

// Control returns a parameter control word with only the type and list type
// set.
func Control(p ParamType, l ListType) uint32 {
	return uint32(p)<<29 | uint32(l)<<24
}

// Lists is a set of polygon list categories.
type Lists uint8

const (
	Opaque Lists = 1 << iota
	Transparent
	PunchThrough
)

var listEvents = [...]struct {
	list Lists
	ev   Event
}{
	{Opaque, LoadOpaque},
	{Transparent, LoadTransparent},
	{PunchThrough, LoadPunchThrough},
}

// Events returns the list-loaded events for the categories in l.
func (l Lists) Events() []Event {
	var evs []Event
	for _, le := range listEvents {
		if l&le.list != 0 {
			evs = append(evs, le.ev)
		}
	}
	return evs
}

// Classify returns the list category a record with control word ctrl
// contributes to. Only polygon and sprite headers carry a list type, and
// modifier volumes aren't supported.
func Classify(ctrl uint32) Lists {
	switch ParamType(ctrl >> 29) {
	case ParamPolygon, ParamSprite:
	default:
		return 0
	}
	switch ListType(ctrl >> 24 & 0x7) {
	case ListOpaque:
		return Opaque
	case ListTranslucent:
		return Transparent
	case ListPunchThrough:
		return PunchThrough
	}
	return 0
}

func controlWord(rec []byte) uint32 {
	return binary.LittleEndian.Uint32(rec)
}
