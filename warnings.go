package folio

import "strings"

// WarningCode identifies a class of non-fatal analysis condition.
type WarningCode int

const (
	// WarnUnknown is the zero value.
	WarnUnknown WarningCode = iota

	// WarnDegenerateRect reports a fragment with a zero-width or zero-height
	// rectangle. Such fragments should have been filtered by the producer;
	// they are unioned normally, which may distort the containing line's
	// rectangle.
	WarnDegenerateRect
)

// String returns a short identifier for the warning code.
func (c WarningCode) String() string {
	switch c {
	case WarnDegenerateRect:
		return "degenerate-rect"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal condition encountered during analysis.
// Warnings accompany a successful result; they indicate the result may be
// imperfect, not that the pass failed.
type Warning struct {
	Code    WarningCode
	Message string
}

// String returns the warning as "code: message".
func (w Warning) String() string {
	return w.Code.String() + ": " + w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
