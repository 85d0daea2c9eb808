package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// FormatForCLI formats an error for CLI output.
// Joined errors (e.g. several failed deletions) are rendered one per block.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var sb strings.Builder
		for _, e := range joined.Unwrap() {
			sb.WriteString(FormatForCLI(e))
		}
		return sb.String()
	}

	var le *LogError
	if !errors.As(err, &le) {
		le = Wrap(ErrCodeInternal, err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Error: %s\n", le.Message))
	if le.Cause != nil && le.Cause.Error() != le.Message {
		sb.WriteString(fmt.Sprintf("  Cause: %v\n", le.Cause))
	}
	if le.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", le.Suggestion))
	}
	sb.WriteString(fmt.Sprintf("  Code: %s\n", le.Code))

	return sb.String()
}

// jsonError is the JSON representation of an error.
type jsonError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Category   string            `json:"category"`
	Severity   string            `json:"severity"`
	Details    map[string]string `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	Cause      string            `json:"cause,omitempty"`
}

// FormatJSON returns a JSON representation of the error.
func FormatJSON(err error) ([]byte, error) {
	if err == nil {
		return json.Marshal(nil)
	}

	var le *LogError
	if !errors.As(err, &le) {
		le = Wrap(ErrCodeInternal, err)
	}

	je := jsonError{
		Code:       le.Code,
		Message:    le.Message,
		Category:   string(le.Category),
		Severity:   string(le.Severity),
		Details:    le.Details,
		Suggestion: le.Suggestion,
	}
	if le.Cause != nil {
		je.Cause = le.Cause.Error()
	}

	return json.Marshal(je)
}

// FormatForLog returns slog-ready key/value pairs for an error.
func FormatForLog(err error) []any {
	if err == nil {
		return nil
	}

	var le *LogError
	if !errors.As(err, &le) {
		return []any{"error", err.Error()}
	}

	attrs := []any{
		"error_code", le.Code,
		"message", le.Message,
		"category", string(le.Category),
		"severity", string(le.Severity),
	}
	if le.Cause != nil {
		attrs = append(attrs, "cause", le.Cause.Error())
	}

	keys := make([]string, 0, len(le.Details))
	for k := range le.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, "detail_"+k, le.Details[k])
	}

	return attrs
}
