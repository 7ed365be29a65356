package models

import "errors"

var (
	// ErrUnknownParameter is returned when a parameter name does not match any Kind.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrInvalidParameterValue is returned when a value cannot be converted
	// to the scalar type of the named parameter.
	ErrInvalidParameterValue = errors.New("invalid parameter value")
)
