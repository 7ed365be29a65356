package app

import "errors"

var (
	ErrUnsupportedOutput = errors.New("unsupported output format")
	ErrNilDependency     = errors.New("nil dependency")
)
