// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/file-forge/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	recs := []types.Record{
		{Op: types.OpImageConvert, Input: "a.png", Output: "a.jpg", InputSize: 1000, OutputSize: 400},
		{Op: types.OpDocConvert, Input: "b.pdf", Output: "b.txt", InputSize: 5000, OutputSize: 900},
		{Op: types.OpVideoConvert, Input: "c.mkv", Output: "c.mp4", InputSize: 9000, OutputSize: 7000},
	}
	for _, rec := range recs {
		require.NoError(t, s.Record(ctx, rec))
	}

	got, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, types.OpVideoConvert, got[0].Op)
	assert.Equal(t, "c.mkv", got[0].Input)
	assert.Equal(t, int64(7000), got[0].OutputSize)
	assert.Equal(t, types.OpImageConvert, got[2].Op)
	assert.WithinDuration(t, time.Now().UTC(), got[0].CreatedAt, time.Minute)
}

func TestListLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, types.Record{Op: types.OpImageResize, Input: "x.png", Output: "y.png"}))
	}

	got, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.List(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}
