package terror

import (
	"fmt"
)

type (
	ErrMagicMismatch struct {
		Expected uint32
		Actual   uint32
	}
	ErrLengthMismatch struct {
		Caller   string
		Expected int
		Actual   int
	}
	ErrUnknownTypeTag struct {
		Tag    uint16
		Offset int
	}
	ErrTruncatedBuffer struct {
		Caller    string
		Offset    int
		Needed    int
		Remaining int
	}
	ErrInvalidDocument struct {
		Caller string
		Key    string
		Reason string
	}
	ErrOutOfBounds struct {
		Caller string
		X      int
		Y      int
	}
	ErrUnreachableCode struct {
		Caller string
	}
	ErrKindMismatch struct {
		Caller string
		Tag    uint16
		Kind   string
	}
	ErrInvalidText struct {
		Caller string
		Field  string
		Reason string
	}
	ErrCountOverflow struct {
		Caller string
		Field  string
		Limit  int
		Actual int
	}
)

func (r ErrMagicMismatch) Error() string {
	return fmt.Sprintf(`invalid magic number: expected "0x%08X", got "0x%08X"`, r.Expected, r.Actual)
}

func (r ErrLengthMismatch) Error() string {
	return fmt.Sprintf("%s: length mismatch: expected %d bytes, got %d", r.Caller, r.Expected, r.Actual)
}

func (r ErrUnknownTypeTag) Error() string {
	return fmt.Sprintf("unknown type tag %d at offset %d", r.Tag, r.Offset)
}

func (r ErrTruncatedBuffer) Error() string {
	return fmt.Sprintf(
		"%s: truncated buffer at offset %d: need %d bytes, %d remaining",
		r.Caller, r.Offset, r.Needed, r.Remaining,
	)
}

func (r ErrInvalidDocument) Error() string {
	if r.Reason == "" {
		return fmt.Sprintf(`%s: invalid document: missing key "%s"`, r.Caller, r.Key)
	}
	return fmt.Sprintf(`%s: invalid document: key "%s": %s`, r.Caller, r.Key, r.Reason)
}

func (r ErrOutOfBounds) Error() string {
	return fmt.Sprintf("%s: position (%d, %d) is out of bounds", r.Caller, r.X, r.Y)
}

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code", r.Caller)
}

func (r ErrKindMismatch) Error() string {
	return fmt.Sprintf("%s: tag %d does not use the %s layout", r.Caller, r.Tag, r.Kind)
}

func (r ErrInvalidText) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", r.Caller, r.Field, r.Reason)
}

func (r ErrCountOverflow) Error() string {
	return fmt.Sprintf("%s: %s holds %d entries, at most %d fit", r.Caller, r.Field, r.Actual, r.Limit)
}
