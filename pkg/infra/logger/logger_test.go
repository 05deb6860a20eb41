package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNew_WritesJSONToFileAndConsole(t *testing.T) {
	defer goleak.VerifyNone(t)
	dir := t.TempDir()
	var console bytes.Buffer

	log, closer, err := New(Options{ServerType: "api", Level: "debug", Dir: dir, Console: &console})
	require.NoError(t, err)

	log.WithField("label", "flagged").Debug("comment classified")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "api.log"))
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "comment classified", entry["msg"])
	assert.Equal(t, "flagged", entry["label"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, bytes.TrimSpace(data), bytes.TrimSpace(console.Bytes()))
}

func TestNew_LevelFallback(t *testing.T) {
	defer goleak.VerifyNone(t)
	log, closer, err := New(Options{ServerType: "board", Level: "verbose", Dir: t.TempDir()})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNew_RejectsPathInServerType(t *testing.T) {
	_, _, err := New(Options{ServerType: "../etc", Dir: t.TempDir()})
	assert.Error(t, err)
}

func TestAsyncFileWriter_WriteAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t)
	w, err := NewAsyncFileWriter(filepath.Join(t.TempDir(), "x.log"), 1024)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, err = w.Write([]byte("late"))
	assert.ErrorIs(t, err, os.ErrClosed)
}
