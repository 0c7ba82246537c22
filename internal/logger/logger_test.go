package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		require.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestGetBeforeInitIsNop(t *testing.T) {
	t.Cleanup(Reset)
	Reset()
	l := Get()
	require.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestInitWritesJSON(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	var buf bytes.Buffer
	l := Init(Options{Level: "warn", Output: &buf})
	l.Info().Msg("dropped")
	l.Warn().Str("k", "v").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "kept", entry["message"])
	require.Equal(t, "v", entry["k"])
	require.Equal(t, "shift-scheduler", entry["service"])

	// second Init is ignored
	var other bytes.Buffer
	Init(Options{Level: "debug", Output: &other})
	l2 := Get()
	l2.Warn().Msg("again")
	require.Zero(t, other.Len())
}
