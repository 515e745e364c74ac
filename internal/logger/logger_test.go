package logger

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func initBuffer(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	Init(cfg, buf)
	t.Cleanup(func() { Init(NewConfig(), io.Discard) })
	return buf
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("err"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestLevelFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "warn"})

	Infof("quiet %d", 1)
	Warnf("loud %d", 2)

	assert.NotContains(t, buf.String(), "quiet 1")
	assert.Contains(t, buf.String(), "loud 2")
	assert.Contains(t, buf.String(), "logger_test.go", "source should point at the caller")
}

func TestTagFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", DisabledTags: []string{"history"}})

	DebugTagf("history", "journal noise")
	DebugTagf("render", "frame drawn")
	Debugf("untagged")

	out := buf.String()
	assert.NotContains(t, out, "journal noise")
	assert.Contains(t, out, "frame drawn")
	assert.Contains(t, out, "tag=render")
	assert.Contains(t, out, "untagged")
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", EnabledTags: []string{"History"}})

	DebugTagf("history", "kept")
	Debugf("dropped")

	assert.Contains(t, buf.String(), "kept")
	assert.NotContains(t, buf.String(), "dropped")
}

func TestPackageAndFileFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "info", DisabledPackages: []string{"logger"}})
	Infof("from logger package")
	assert.NotContains(t, buf.String(), "from logger package")

	buf = initBuffer(t, Config{LogLevel: "info", EnabledFiles: []string{"other.go"}})
	Infof("not in enabled file")
	assert.NotContains(t, buf.String(), "not in enabled file")
}

func TestPasses(t *testing.T) {
	set := sliceToSet([]string{"a"})
	assert.True(t, passes(nil, nil, ""))
	assert.True(t, passes(set, nil, "A"))
	assert.False(t, passes(set, nil, "b"))
	assert.False(t, passes(nil, set, "a"))
	assert.False(t, passes(set, set, "a"))
	assert.Nil(t, sliceToSet([]string{"", ""}))
}
