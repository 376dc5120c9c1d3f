package repository

import "fmt"

// Kind classifies what went wrong during a repository operation. The service
// layer uses it to decide which failures may be shown to a caller.
type Kind int

const (
	// KindInvalidID means the raw identifier was not a valid ObjectID hex
	// string. User-attributable.
	KindInvalidID Kind = iota
	// KindNotFound means no document matched the identifier. User-attributable.
	KindNotFound
	// KindSerialization means a request could not be encoded into a store
	// document.
	KindSerialization
	// KindDeserialization means a store document could not be decoded into an
	// entity.
	KindDeserialization
	// KindStore means the store operation itself failed (connectivity,
	// server-side error).
	KindStore
	// KindBadInsertResult means the insert acknowledgment did not carry a
	// usable ObjectID. Should not occur under normal operation.
	KindBadInsertResult
)

// Error is the single error type returned by repositories. Entity names the
// collection's entity ("book", "meeting") so user-facing messages read
// naturally.
type Error struct {
	Kind   Kind
	Entity string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidID:
		return "Invalid ID."
	case KindNotFound:
		return fmt.Sprintf("%s does not exist.", title(e.Entity))
	case KindSerialization:
		return fmt.Sprintf("serialize %s: %v", e.Entity, e.Err)
	case KindDeserialization:
		return fmt.Sprintf("deserialize %s: %v", e.Entity, e.Err)
	case KindBadInsertResult:
		return "Insert did not return ObjectId."
	default:
		return fmt.Sprintf("store operation on %s: %v", e.Entity, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// UserFacing reports whether the error is attributable to the caller and may
// be surfaced with its message intact.
func (e *Error) UserFacing() bool {
	return e.Kind == KindInvalidID || e.Kind == KindNotFound
}

func title(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
