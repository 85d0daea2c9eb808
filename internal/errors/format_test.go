package errors

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForCLI_IncludesHintAndCode(t *testing.T) {
	// Given: a directory creation error
	err := DirCreateError("/ro/Logs", errors.New("read-only file system"))

	// When: formatting for CLI
	result := FormatForCLI(err)

	// Then: message, cause, hint and code are present
	assert.Contains(t, result, "Error: failed to create log directory")
	assert.Contains(t, result, "Cause: read-only file system")
	assert.Contains(t, result, "Hint:")
	assert.Contains(t, result, "Code: ERR_201_DIR_CREATE")
}

func TestFormatForCLI_StandardError(t *testing.T) {
	result := FormatForCLI(errors.New("something went wrong"))

	assert.Contains(t, result, "Error: something went wrong")
	assert.Contains(t, result, ErrCodeInternal)
	assert.NotContains(t, result, "Cause:")
}

func TestFormatForCLI_JoinedErrors(t *testing.T) {
	// Given: two joined delete failures
	err := errors.Join(
		DeleteError("/x/Logs/a.log", errors.New("busy")),
		DeleteError("/x/Logs/b.log", errors.New("busy")),
	)

	// When: formatting for CLI
	result := FormatForCLI(err)

	// Then: both are rendered
	assert.Equal(t, 2, strings.Count(result, "Code: ERR_204_DELETE_FAILED"))
}

func TestFormatForCLI_Nil(t *testing.T) {
	assert.Empty(t, FormatForCLI(nil))
}

func TestFormatJSON_RoundTripsFields(t *testing.T) {
	// Given: an error with details
	err := WriteError("/x/Logs/a.log", errors.New("disk full"))

	// When: formatting as JSON
	data, jerr := FormatJSON(err)
	require.NoError(t, jerr)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Then: all fields survive
	assert.Equal(t, ErrCodeWriteFailed, decoded["code"])
	assert.Equal(t, "IO", decoded["category"])
	assert.Equal(t, "FATAL", decoded["severity"])
	assert.Equal(t, "disk full", decoded["cause"])
	details, ok := decoded["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/x/Logs/a.log", details["path"])
}

func TestFormatForLog_KeyValuePairs(t *testing.T) {
	err := DeleteError("/x/Logs/a.log", errors.New("busy"))

	attrs := FormatForLog(err)

	require.Equal(t, 0, len(attrs)%2)
	assert.Contains(t, attrs, "error_code")
	assert.Contains(t, attrs, ErrCodeDeleteFailed)
	assert.Contains(t, attrs, "detail_path")
	assert.Contains(t, attrs, "busy")
}

func TestFormatForLog_StandardError(t *testing.T) {
	assert.Equal(t, []any{"error", "plain"}, FormatForLog(errors.New("plain")))
	assert.Nil(t, FormatForLog(nil))
}
