package scenarios

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentialDriveEndToEnd(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	summary, _, err := SequentialDrive(context.Background(), &out, dir, 10)
	require.NoError(t, err)

	assert.Positive(t, summary.WriteSpeedMBps)
	assert.Positive(t, summary.ReadSpeedMBps)
	assert.Equal(t, 10, summary.FileSizeMB)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "test file removed after the run")

	assert.Contains(t, out.String(), "10 MB test file")
	assert.Contains(t, out.String(), "✓ Write:")
}

func TestSequentialDriveFailure(t *testing.T) {
	_, counters, err := SequentialDrive(context.Background(), io.Discard, "/nonexistent/sysmark-test", 1)
	require.Error(t, err)
	assert.Nil(t, counters)
}

func TestRandomDriveEndToEnd(t *testing.T) {
	dir := t.TempDir()

	summary, _, err := RandomDrive(context.Background(), io.Discard, dir, 50)
	require.NoError(t, err)

	assert.Positive(t, summary.ReadIOPS)
	assert.Positive(t, summary.WriteIOPS)
	assert.Equal(t, 50, summary.Operations)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "test file removed after the run")
}

func TestRandomDriveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, _, err := RandomDrive(ctx, io.Discard, dir, 10)
	require.ErrorIs(t, err, context.Canceled)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "cleanup also runs on the canceled path")
}
