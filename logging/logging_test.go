// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/dropcorr/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
	}
	for _, c := range cases {
		got, err := logging.ParseLevel(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrBadLevel)
	_, err = logging.New("loud", true)
	assert.ErrorIs(t, err, logging.ErrBadLevel)
}

func TestNewTo_JSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log, err := logging.NewTo(&buf, "info", false)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("sampled", zap.Int("rows", 1000))
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug must be filtered at info level")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "sampled", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 1000, entry["rows"])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}$`, entry["ts"])
	assert.Contains(t, entry["caller"], "logging_test.go")
}

func TestNewTo_Console(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log, err := logging.NewTo(&buf, "debug", true)
	require.NoError(t, err)

	log.Debug("dropout", zap.Float64("keep", 0.42))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\t`), out)
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "dropout")
	assert.Contains(t, out, `"keep": 0.42`)
}
