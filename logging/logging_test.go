package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/boundsbox/config"
)

func TestNewSelectsBackend(t *testing.T) {
	l, err := New(config.Logging{Backend: config.BackendStd, Level: "debug"})
	require.NoError(t, err)
	assert.IsType(t, &StdLogger{}, l)
	assert.True(t, l.DebugEnabled())

	l, err = New(config.Logging{Backend: config.BackendNop})
	require.NoError(t, err)
	assert.Equal(t, Nop{}, l)
	assert.False(t, l.DebugEnabled())

	l, err = New(config.Logging{Backend: config.BackendZap, Quiet: true})
	require.NoError(t, err)
	assert.IsType(t, &ZapLogger{}, l)

	_, err = New(config.Logging{Backend: config.BackendZap, Level: "loud"})
	assert.Error(t, err)
}

func TestZapLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gizmo.log")
	l, err := NewZapLogger(config.Logging{Level: "info", Prefix: "test", File: path, MaxSizeMB: 1, Quiet: true})
	require.NoError(t, err)

	l.Infof("activated %d", 1)
	l.Debugf("hidden")
	assert.False(t, l.DebugEnabled())

	l.SetDebug(true)
	l.Debugf("now visible")
	l.SetDebug(false)
	assert.False(t, l.DebugEnabled())
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "activated 1")
	assert.Contains(t, out, "now visible")
	assert.Contains(t, out, "test")
	assert.NotContains(t, out, "hidden")
}

func TestStdLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(&buf, "gizmo", false)
	assert.False(t, l.DebugEnabled())

	l.Debugf("hidden")
	l.Infof("x=%d", 1)
	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown")
	l.Errorf("bad %s", "grab")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "[gizmo] INFO: x=1"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "[gizmo] DEBUG: shown"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], "[gizmo] ERROR: bad grab"), lines[2])
}

func TestStdLoggerWithoutPrefix(t *testing.T) {
	var buf bytes.Buffer
	NewStdLogger(&buf, "", false).Warnf("careful")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(buf.String()), " WARN: careful"))
	assert.NotContains(t, buf.String(), "[")
}

func TestOrNop(t *testing.T) {
	assert.Equal(t, Nop{}, OrNop(nil))
	l := NewStdLogger(io.Discard, "", false)
	assert.Same(t, l, OrNop(l))
}
