package sqrrl

import (
	"errors"
	"fmt"
)

/*
Error codes. You probably shouldn't use this directly; instead, use the `Err`
variables with `errors.Is`.
*/
type ErrCode string

const (
	ErrCodeUnknown                ErrCode = ""
	ErrCodeInvalidInput           ErrCode = "InvalidInput"
	ErrCodeConditionCountMismatch ErrCode = "ConditionCountMismatch"
	ErrCodeColumnCountMismatch    ErrCode = "ColumnCountMismatch"
	ErrCodeUnnamedArgument        ErrCode = "UnnamedArgument"
	ErrCodeDuplicateColumn        ErrCode = "DuplicateColumn"
	ErrCodeMissingArgument        ErrCode = "MissingArgument"
	ErrCodeUnexpectedParameter    ErrCode = "UnexpectedParameter"
	ErrCodeUnusedArgument         ErrCode = "UnusedArgument"
	ErrCodeOrdinalOutOfBounds     ErrCode = "OrdinalOutOfBounds"
	ErrCodeExternal               ErrCode = "External"
)

/*
Use blank error variables to detect error types:

	if errors.Is(err, sqrrl.ErrConditionCountMismatch) {
		// Handle specific error.
	}

Note that errors returned by this package can't be compared via `==` because
they include additional details about the circumstances. When compared by
`errors.Is`, they compare `.Cause` and fall back on `.Code`.
*/
var (
	ErrInvalidInput           Err = Err{Code: ErrCodeInvalidInput, Cause: errors.New(`invalid input`)}
	ErrConditionCountMismatch Err = Err{Code: ErrCodeConditionCountMismatch, Cause: errors.New(`join condition count mismatch`)}
	ErrColumnCountMismatch    Err = Err{Code: ErrCodeColumnCountMismatch, Cause: errors.New(`column count mismatch`)}
	ErrUnnamedArgument        Err = Err{Code: ErrCodeUnnamedArgument, Cause: errors.New(`unnamed argument`)}
	ErrDuplicateColumn        Err = Err{Code: ErrCodeDuplicateColumn, Cause: errors.New(`duplicate column`)}
	ErrMissingArgument        Err = Err{Code: ErrCodeMissingArgument, Cause: errors.New(`missing argument`)}
	ErrUnexpectedParameter    Err = Err{Code: ErrCodeUnexpectedParameter, Cause: errors.New(`unexpected parameter`)}
	ErrUnusedArgument         Err = Err{Code: ErrCodeUnusedArgument, Cause: errors.New(`unused argument`)}
	ErrOrdinalOutOfBounds     Err = Err{Code: ErrCodeOrdinalOutOfBounds, Cause: errors.New(`ordinal parameter exceeds arguments`)}
	ErrExternal               Err = Err{Code: ErrCodeExternal, Cause: errors.New(`external tool failure`)}
)

// Type of errors returned by this package.
type Err struct {
	Code  ErrCode
	While string
	Cause error
}

// Implement `error`.
func (self Err) Error() string {
	if self == (Err{}) {
		return ""
	}
	msg := `[sqrrl]`
	if self.Code != ErrCodeUnknown {
		msg += fmt.Sprintf(` %s`, self.Code)
	}
	if self.While != "" {
		msg += fmt.Sprintf(` while %v`, self.While)
	}
	if self.Cause != nil {
		msg += `: ` + self.Cause.Error()
	}
	return msg
}

// Implement a hidden interface in "errors".
func (self Err) Is(other error) bool {
	if self.Cause != nil && errors.Is(self.Cause, other) {
		return true
	}
	err, ok := other.(Err)
	return ok && err.Code == self.Code
}

// Implement a hidden interface in "errors".
func (self Err) Unwrap() error {
	return self.Cause
}

func (self Err) while(while string) Err {
	self.While = while
	return self
}

func (self Err) because(cause error) Err {
	self.Cause = cause
	return self
}

func errf(pattern string, args ...interface{}) error {
	return fmt.Errorf(pattern, args...)
}
