package domain

import (
	"errors"
	"strings"
)

var ErrValidation = errors.New("validation failed")
var ErrTemplateNotFound = errors.New("template not found")
var ErrInvalidTemplateName = errors.New("template name must not be empty")
var ErrUnknownCourier = errors.New("unknown courier")
var ErrServiceNotOffered = errors.New("service not offered by courier")
var ErrUnknownLayout = errors.New("unknown label layout")
var ErrInvalidPayload = errors.New("invalid barcode payload")
var ErrUnsupportedFormat = errors.New("unsupported export format")
var ErrForbidden = errors.New("access forbidden")

// ValidationError lists the mandatory fields that were missing from a label
// request. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
