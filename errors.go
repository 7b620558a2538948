package peerscore

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindInput means the invocation did not name the required files.
	KindInput
	// KindNotFound means an input file could not be opened because it
	// does not exist.
	KindNotFound
	// KindConfig means the column exclusion configuration is malformed.
	KindConfig
	// KindData means the worksheet or roster content cannot be processed.
	KindData
)

func (k ErrorKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindNotFound:
		return "not found"
	case KindConfig:
		return "config"
	case KindData:
		return "data"
	default:
		return "unknown"
	}
}

var (
	ErrUsage         = errors.New("need a survey spreadsheet and a roster file")
	ErrAmbiguous     = errors.New("more than one candidate file")
	ErrEmpty         = errors.New("no data")
	ErrUnequalBlocks = errors.New("peers have unequal numbers of questions")
)

// Error is the error type returned by the pipeline stages. Kind tells the
// caller which class of failure occurred.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func dataErrorf(op, format string, args ...any) error {
	return &Error{Kind: KindData, Op: op, Err: fmt.Errorf(format, args...)}
}

func configErrorf(op, format string, args ...any) error {
	return &Error{Kind: KindConfig, Op: op, Err: fmt.Errorf(format, args...)}
}
