// SPDX-License-Identifier: MIT
package grid_test

import (
	"bytes"
	"image"
	"log/slog"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/stretchr/testify/require"
)

// captureLogs installs a debug-level text logger for the duration of t.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	grid.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { grid.SetLogger(nil) })
	return &buf
}

func TestLoggerFastPath(t *testing.T) {
	buf := captureLogs(t)

	b, err := grid.New[int](image.Pt(4, 4))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "buffer allocated")

	require.NoError(t, grid.Fill[int](b, image.Rect(0, 0, 2, 2), 1))
	require.Contains(t, buf.String(), "fill row fast path")

	require.NoError(t, grid.Copy[int](b, seqBuffer(t, 2, 2)))
	require.Contains(t, buf.String(), "blit row fast path")
}

func TestLoggerCapacityWarning(t *testing.T) {
	buf := captureLogs(t)

	_, err := grid.FromSlice(image.Pt(3, 3), make([]int, 4))
	require.ErrorIs(t, err, grid.ErrCapacity)
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), "need=9")

	_, err = grid.BitsFromSlice(image.Pt(9, 1), []byte{0})
	require.ErrorIs(t, err, grid.ErrCapacity)
	require.Contains(t, buf.String(), "have=1")
}

func TestLoggerDefaultSilent(t *testing.T) {
	grid.SetLogger(nil)
	require.NotNil(t, grid.Logger())
	require.False(t, grid.Logger().Enabled(t.Context(), slog.LevelError))
}
