package refill

import (
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %v", msg, err)
}

type unknownStandard struct {
	message string
}

// NewUnknownStandard creates an error for a binder standard id
// that is not part of the catalog.
func NewUnknownStandard(s string, v ...interface{}) error {
	return unknownStandard{fmt.Sprintf("unknown binder standard: %v", fmt.Sprintf(s, v...))}
}

func (u unknownStandard) Error() string {
	return u.message
}

// IsUnknownStandard checks if the given error refers to a binder standard
// that is not in the catalog.
func IsUnknownStandard(err error) bool {
	_, ok := err.(unknownStandard)
	return ok
}

type degenerateArea struct {
	message string
}

// NewDegenerateArea creates an error for a content area with non-positive
// width or height. Callers must not clamp such an area to zero.
func NewDegenerateArea(s string, v ...interface{}) error {
	return degenerateArea{fmt.Sprintf("degenerate content area: %v", fmt.Sprintf(s, v...))}
}

func (d degenerateArea) Error() string {
	return d.message
}

// IsDegenerateArea checks if the given error reports an unprintable
// content area.
func IsDegenerateArea(err error) bool {
	_, ok := err.(degenerateArea)
	return ok
}

type invalidDimensions struct {
	message string
}

// NewInvalidContentDimensions creates an error for a content raster
// with zero or negative pixel dimensions.
func NewInvalidContentDimensions(s string, v ...interface{}) error {
	return invalidDimensions{fmt.Sprintf("invalid content dimensions: %v", fmt.Sprintf(s, v...))}
}

func (i invalidDimensions) Error() string {
	return i.message
}

// IsInvalidContentDimensions checks if the given error reports a content
// raster with unusable pixel dimensions.
func IsInvalidContentDimensions(err error) bool {
	_, ok := err.(invalidDimensions)
	return ok
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates an error from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}
