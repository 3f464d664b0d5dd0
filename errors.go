package toolbox

import (
	"errors"
	"fmt"
)

//region StringError
// StringError this type is just like `errors.New` but it may be declared as `const`
type StringError string

func (this StringError) Error() string { return string(this) }

const (
	ErrInvalidArgument StringError = "One or more invalid argument passed to the function"
	ErrInvalidFormat   StringError = "Illegal format was specified"
	ErrEndOfInput      StringError = "Input stream is exhausted"
	ErrEmptyMenu       StringError = "Menu does not contain any item"
	ErrBallNotFound    StringError = "The ball does not exist"
	ErrEmptyStock      StringError = "There is no card left in the stock"
	ErrNoRecord        StringError = "The specified record could not be found"
	ErrNoStartPoint    StringError = "Start point does not exist"
	ErrNoEndPoint      StringError = "End point does not exist"
)

//endregion

//region InvalidFormatError
// InvalidFormatError this error indicate that a token could not be converted to an integer of a
// specified width. It matches `ErrInvalidFormat` through `errors.Is`
type InvalidFormatError struct {
	Token string
	Bits  int
}

func (this InvalidFormatError) Error() string {
	if this.Bits == 0 {
		return fmt.Sprintf("%q: %s", this.Token, ErrInvalidFormat)
	}
	return fmt.Sprintf("%q is not a valid %d bit integer: %s", this.Token, this.Bits, ErrInvalidFormat)
}
func (this InvalidFormatError) Is(err error) bool {
	return err == ErrInvalidFormat
}
func (this InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}

// IsInvalidFormat check whether an error is caused by an illegal input
func IsInvalidFormat(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

//endregion
