package render

import "fmt"

// ArrowStyle configures how basis arrows are drawn. Zero-valued fields
// keep the library defaults. Extra entries are forwarded verbatim to
// the backend via Arrow.SetStyle; a backend rejection surfaces as a
// *StyleError.
type ArrowStyle struct {
	LineWidth float64
	HeadSize  float64
	Extra     map[string]any
}

// TextStyle configures basis labels the same way ArrowStyle configures
// arrows.
type TextStyle struct {
	FontSize float64
	Extra    map[string]any
}

// StyleError wraps a backend's rejection of a style property with the
// offending key, preserving the original cause for errors.Is/As.
type StyleError struct {
	Key   string
	Cause error
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("style property %q rejected: %v", e.Key, e.Cause)
}

func (e *StyleError) Unwrap() error { return e.Cause }
