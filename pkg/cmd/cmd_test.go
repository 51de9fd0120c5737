package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authprobe/pkg/config"
)

func newTestRoot(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	t.Setenv("AUTHPROBE_SERVER", "")
	t.Setenv("AUTHPROBE_OUTPUT", "")
	t.Setenv("AUTHPROBE_TIMEOUT", "")
	t.Setenv("AUTHPROBE_VERBOSE", "")
	t.Setenv("AUTHPROBE_NON_INTERACTIVE", "")

	var buf bytes.Buffer
	root := NewRootCommand(Config{
		ConfigPath:   filepath.Join(t.TempDir(), "config.yaml"),
		OutputWriter: &buf,
	})
	root.SetArgs(args)
	root.SetOut(&buf)
	root.SetErr(&buf)
	return &buf, root.Execute()
}

func TestVersionCommand(t *testing.T) {
	buf, err := newTestRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "authprobe")
}

func TestVersionCommandJSON(t *testing.T) {
	buf, err := newTestRoot(t, "version", "-o", "json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "goVersion")
}

func TestFlowCommandRefusesNonInteractive(t *testing.T) {
	_, err := newTestRoot(t, "flow", "--non-interactive")
	require.Error(t, err)
	require.Contains(t, err.Error(), "prompts for input")
}

func TestTokenInspectCommand(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-7",
		"email": "alice@example.com",
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	buf, err := newTestRoot(t, "token", "inspect", signed)
	require.NoError(t, err)

	var claims map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &claims))
	assert.Equal(t, "user-7", claims["sub"])
	assert.Equal(t, "alice@example.com", claims["email"])
}

func TestTokenInspectRejectsGarbage(t *testing.T) {
	_, err := newTestRoot(t, "token", "inspect", "not-a-jwt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse token")
}

func TestConfigInitAndView(t *testing.T) {
	t.Setenv("AUTHPROBE_SERVER", "")
	t.Setenv("AUTHPROBE_OUTPUT", "")
	t.Setenv("AUTHPROBE_TIMEOUT", "")
	t.Setenv("AUTHPROBE_VERBOSE", "")
	t.Setenv("AUTHPROBE_NON_INTERACTIVE", "")

	path := filepath.Join(t.TempDir(), "config.yaml")

	var initOut bytes.Buffer
	root := NewRootCommand(Config{ConfigPath: path, OutputWriter: &initOut})
	root.SetArgs([]string{"config", "init", "--server", "http://auth.example.com/api"})
	require.NoError(t, root.Execute())
	assert.Contains(t, initOut.String(), "Config written to")

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://auth.example.com/api", loaded.Server)

	var viewOut bytes.Buffer
	root = NewRootCommand(Config{ConfigPath: path, OutputWriter: &viewOut})
	root.SetArgs([]string{"config", "view"})
	require.NoError(t, root.Execute())
	assert.Contains(t, viewOut.String(), "http://auth.example.com/api")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: v1\n"), 0o600))

	var buf bytes.Buffer
	root := NewRootCommand(Config{ConfigPath: path, OutputWriter: &buf})
	root.SetArgs([]string{"config", "init", "--server", "http://auth.example.com/api"})
	root.SetErr(&buf)
	require.Error(t, root.Execute())
}

func TestBuildClientDefaults(t *testing.T) {
	t.Setenv("AUTHPROBE_SERVER", "")
	rt := &runtimeState{}
	apiClient, err := buildClient(rt)
	require.NoError(t, err)
	require.NotNil(t, apiClient)
}

func TestBuildClientBadTimeoutIgnored(t *testing.T) {
	t.Setenv("AUTHPROBE_SERVER", "")
	rt := &runtimeState{timeoutFlag: "not-a-duration"}
	apiClient, err := buildClient(rt)
	require.NoError(t, err)
	require.NotNil(t, apiClient)
}

func TestOutputFormatFallback(t *testing.T) {
	rt := &runtimeState{}
	require.Equal(t, "json", rt.OutputFormat())

	rt.cfg = &config.Config{Settings: config.Settings{OutputFormat: "yaml"}}
	require.Equal(t, "yaml", rt.OutputFormat())

	rt.outputFormat = "json"
	require.Equal(t, "json", rt.OutputFormat())
}
