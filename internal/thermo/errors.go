package thermo

import (
	"github.com/ansel1/merry"
)

var (
	ErrInvalidUnit         = merry.New("invalid pressure unit")
	ErrInvalidMagnitude    = merry.New("invalid pressure magnitude")
	ErrInvalidTemperature  = merry.New("invalid temperature")
	ErrInvalidReducedState = merry.New("invalid reduced state")
)

var (
	errorKinds     = []error{ErrInvalidUnit, ErrInvalidMagnitude, ErrInvalidTemperature, ErrInvalidReducedState}
	errorKindNames = []string{"InvalidUnit", "InvalidMagnitude", "InvalidTemperature", "InvalidReducedState"}
)

const keyValue = "value"

// ErrorKind returns the name of the failure kind of err, or an empty string when err
// is not one of the engine's validation errors.
func ErrorKind(err error) string {
	for i, kind := range errorKinds {
		if merry.Is(err, kind) {
			return errorKindNames[i]
		}
	}
	return ""
}

// ErrorOfKind returns the sentinel error for a kind name produced by ErrorKind.
func ErrorOfKind(name string) error {
	for i, s := range errorKindNames {
		if s == name {
			return errorKinds[i]
		}
	}
	return nil
}

// OffendingValue returns the input value that caused a validation failure.
func OffendingValue(err error) (interface{}, bool) {
	v := merry.Value(err, keyValue)
	return v, v != nil
}

func invalid(kind merry.Error, value interface{}, format string, args ...interface{}) error {
	return kind.Here().WithValue(keyValue, value).Appendf(format, args...)
}
