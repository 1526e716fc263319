package validate

import (
	"errors"
	"strings"
)

var ErrInvalid = errors.New("invalid input")

var (
	ErrNotSignedIn  = errors.New("not signed in")
	ErrOwnAuction   = errors.New("bid on own auction")
	ErrAuctionEnded = errors.New("auction has ended")
	ErrBidAmount    = errors.New("invalid bid amount")
	ErrBidTooLow    = errors.New("bid amount too low")
)

type FieldError struct {
	Field   string
	Message string
}

// Error lists the failing fields. It matches ErrInvalid and, for bid rules,
// the specific rule that failed.
type Error struct {
	Fields []FieldError
	cause  error
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrInvalid}
	}
	return []error{ErrInvalid, e.cause}
}

// Field returns the message for name, or "" when that field passed.
func (e *Error) Field(name string) string {
	for _, f := range e.Fields {
		if f.Field == name {
			return f.Message
		}
	}
	return ""
}
