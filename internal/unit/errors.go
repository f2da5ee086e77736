package unit

import "fmt"

// ShapeError reports a dimension mismatch between an operation's argument
// and the unit's configured classCount/inputCount. Forward and Update panic
// with a *ShapeError rather than proceeding on malformed input: a mismatch
// is a programming error in the caller, not a recoverable condition.
type ShapeError struct {
	Op   string // operation that detected the mismatch
	Want string // expected dimensions
	Got  string // dimensions received
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unit: %s: expected %s, got %s", e.Op, e.Want, e.Got)
}
