package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/config"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestLoad_DefaultWhenNoPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	path := writeTemp(t, "run.yaml", `
training: data/train.txt
testing: data/test.txt
max_depth: 3
workers: 4
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/train.txt", cfg.Training)
	assert.Equal(t, "data/test.txt", cfg.Testing)
	assert.Equal(t, 3, cfg.MaxDepth)
	assert.True(t, cfg.MaxDepthSet)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep defaults")
}

func TestMaxDepthSet(t *testing.T) {
	cfg, err := config.Load(writeTemp(t, "run.yaml", "workers: 2\n"))
	require.NoError(t, err)
	assert.False(t, cfg.MaxDepthSet, "default depth is not an explicit one")

	require.NoError(t, cfg.ApplyEnv(env(map[string]string{"SOCIALREC_WORKERS": "3"})))
	assert.False(t, cfg.MaxDepthSet)

	require.NoError(t, cfg.ApplyEnv(env(map[string]string{"SOCIALREC_MAX_DEPTH": "4"})))
	assert.True(t, cfg.MaxDepthSet)
	assert.Equal(t, 4, cfg.MaxDepth)

	cfg, err = config.Load(writeTemp(t, "run.toml", "workers = 2\n"))
	require.NoError(t, err)
	assert.False(t, cfg.MaxDepthSet)
}

func TestLoad_EmptyYAML(t *testing.T) {
	cfg, err := config.Load(writeTemp(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	path := writeTemp(t, "run.toml", `
training = "a.txt"
max_depth = 1

[log]
format = "json"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "a.txt", cfg.Training)
	assert.Equal(t, 1, cfg.MaxDepth)
	assert.True(t, cfg.MaxDepthSet)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_UnknownKeys(t *testing.T) {
	_, err := config.Load(writeTemp(t, "bad.yaml", "max_deep: 3\n"))
	assert.Error(t, err)

	_, err = config.Load(writeTemp(t, "bad.toml", "max_deep = 3\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(env(map[string]string{
		"SOCIALREC_TRAINING":   "t.txt",
		"SOCIALREC_MAX_DEPTH":  "5",
		"SOCIALREC_WORKERS":    " 2 ",
		"SOCIALREC_LOG_FORMAT": "json",
	})))
	assert.Equal(t, "t.txt", cfg.Training)
	assert.Equal(t, 5, cfg.MaxDepth)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.MaxDepthSet)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)

	bad := config.Default()
	err := bad.ApplyEnv(env(map[string]string{"SOCIALREC_MAX_DEPTH": "two"}))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	err = bad.ApplyEnv(env(map[string]string{"SOCIALREC_WORKERS": "many"}))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.Log.Level = "loud"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.Log.Format = "xml"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.MaxDepth = -1
	assert.NoError(t, cfg.Validate(), "negative depth is allowed and yields no recommendations")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := config.LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.Contains(t, out, `"msg":"shown"`)

	_, err = config.LogConfig{Level: "info", Format: "yaml"}.NewLogger(&buf)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
