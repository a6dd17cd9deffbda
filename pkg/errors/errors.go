// Package errors provides structured error handling for the strata
// chart library.
package errors

import "fmt"

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration or declaration parsing failure.
	KindConfig
	// KindTheme indicates a theme pack loading or validation failure.
	KindTheme
	// KindRender indicates a rendering or serialization error.
	KindRender
	// KindRaster indicates a rasterization (headless browser) failure.
	KindRaster
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTheme:
		return "theme"
	case KindRender:
		return "render"
	case KindRaster:
		return "raster"
	default:
		return "unknown"
	}
}

// ChartError represents a structured error in the strata library.
type ChartError struct {
	// Op is the operation that failed (e.g., "theme.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

// New wraps an underlying error with operation and kind context.
func New(op string, kind ErrorKind, err error) *ChartError {
	return &ChartError{Op: op, Kind: kind, Err: err}
}

// Newf wraps a formatted message with operation and kind context.
func Newf(op string, kind ErrorKind, format string, args ...any) *ChartError {
	return &ChartError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}
