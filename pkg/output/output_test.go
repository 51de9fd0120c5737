package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteObjectJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteObject(&buf, FormatJSON, map[string]int{"count": 42}))

	var result map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, 42, result["count"])
}

func TestWriteObjectYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteObject(&buf, FormatYAML, map[string]string{"status": "ok"}))

	var result map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "ok", result["status"])
}

func TestWriteObjectUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteObject(&buf, Format("table"), map[string]string{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown output format")
}

func TestWriteResponse(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResponse(&buf, "Login", map[string]any{"accessToken": "abc"}))

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "Login Response: "), "got %q", line)
	assert.Contains(t, line, `"accessToken":"abc"`)
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestWriteResponseUnmarshalableBody(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, WriteResponse(&buf, "Login", func() {}))
}
