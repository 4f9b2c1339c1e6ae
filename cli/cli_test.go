package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"contraption/config"
	"contraption/tim"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generatedPath = "../tim/testdata/GENERATED0001.TIM"

func newTestLogger() (*log.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewLogger(buf, config.Default(), true), buf
}

func TestStartConverting_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "level.json")
	timPath := filepath.Join(dir, "LEVEL.TIM")
	logger, logs := newTestLogger()
	cfg := config.Default()

	err := StartConverting(ConvertCmd{From: generatedPath, To: jsonPath}, cfg, logger)
	require.NoError(t, err)
	jsonBytes, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.False(t, tim.IsTIM(jsonBytes))
	assert.Contains(t, string(jsonBytes), `"part_type": "bowling_ball"`)

	err = StartConverting(ConvertCmd{From: jsonPath, To: timPath}, cfg, logger)
	require.NoError(t, err)
	expected, err := os.ReadFile(generatedPath)
	require.NoError(t, err)
	actual, err := os.ReadFile(timPath)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.Contains(t, logs.String(), "done converting")
	assert.Contains(t, logs.String(), "decoding level file")
}

func TestStartConverting_Existence(t *testing.T) {
	dir := t.TempDir()
	logger, _ := newTestLogger()
	cfg := config.Default()

	err := StartConverting(ConvertCmd{From: filepath.Join(dir, "missing.TIM"), To: filepath.Join(dir, "x.json")}, cfg, logger)
	assert.ErrorContains(t, err, "does not exist")

	existing := filepath.Join(dir, "existing.json")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0644))
	err = StartConverting(ConvertCmd{From: generatedPath, To: existing}, cfg, logger)
	assert.ErrorContains(t, err, "--force")

	err = StartConverting(ConvertCmd{From: generatedPath, To: existing, Force: true}, cfg, logger)
	assert.NoError(t, err)
}

func TestStartConverting_NoMagic(t *testing.T) {
	dir := t.TempDir()
	source, err := os.ReadFile(generatedPath)
	require.NoError(t, err)
	source[3] = 0x02
	sourcePath := filepath.Join(dir, "ODD.TIM")
	require.NoError(t, os.WriteFile(sourcePath, source, 0644))
	logger, _ := newTestLogger()

	// without the magic the file is taken for a document
	err = StartConverting(ConvertCmd{From: sourcePath, To: filepath.Join(dir, "odd.json")}, config.Default(), logger)
	assert.ErrorContains(t, err, "encode document")

	cfg := config.Default()
	_, err = LoadLevel(sourcePath, CodecOptions(cfg, logger))
	assert.NoError(t, err)
	cfg.Codec.StrictMagic = true
	_, err = LoadLevel(sourcePath, CodecOptions(cfg, logger))
	assert.ErrorContains(t, err, "magic")
}

func TestLoadLevel(t *testing.T) {
	logger, _ := newTestLogger()
	level, err := LoadLevel(generatedPath, CodecOptions(config.Default(), logger))
	require.NoError(t, err)
	assert.Equal(t, "BOWLING_BALL", level.Header.Title)

	_, err = LoadLevel(filepath.Join(t.TempDir(), "missing.TIM"), CodecOptions(config.Default(), logger))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := config.Default()
	NewLogger(buf, cfg, false).Debug("hidden")
	assert.Empty(t, buf.String())
	NewLogger(buf, cfg, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
