// internal/models/errors.go
package models

import "fmt"

// RawSnippetLimit bounds how much raw completion text a GenerationError keeps
// for diagnostics.
const RawSnippetLimit = 500

// ParseError reports completion output that did not contain a recoverable
// JSON object, or a bounded span that was not valid JSON.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a parsed theme lacking the minimum required shape.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// DuplicateNameError reports a save conflict under the reject policy. It is a
// client-correctable conflict, not a system failure.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("theme name %q already exists", e.Name)
}

// NotFoundError reports an overwrite or delete referencing a nonexistent id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("theme %d not found", e.ID)
}

// GenerationError wraps an extraction or normalization failure during theme
// generation and retains a truncated snippet of the offending raw text.
type GenerationError struct {
	Raw string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("bad completion response: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// TruncateRaw bounds raw completion text to the diagnostic snippet length.
func TruncateRaw(raw string) string {
	if len(raw) > RawSnippetLimit {
		return raw[:RawSnippetLimit]
	}
	return raw
}
