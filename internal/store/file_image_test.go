// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

func TestFileImageStorage_SaveAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "media")
	storage, err := NewFileImageStorage(dir, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	key := "uploads/recipe/abc.png"

	require.NoError(t, storage.Save(ctx, key, strings.NewReader("png-bytes"), "image/png"))

	data, err := os.ReadFile(filepath.Join(dir, "uploads", "recipe", "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	entries, err := os.ReadDir(filepath.Join(dir, "uploads", "recipe"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")

	require.NoError(t, storage.Delete(ctx, key))
	_, err = os.Stat(filepath.Join(dir, "uploads", "recipe", "abc.png"))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, storage.Delete(ctx, key))
}

func TestFileImageStorage_RejectsEscapingKeys(t *testing.T) {
	storage, err := NewFileImageStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	for _, key := range []string{"", "../evil.png", "/etc/passwd", "uploads/../../evil.png"} {
		t.Run(key, func(t *testing.T) {
			err := storage.Save(context.Background(), key, strings.NewReader("x"), "")
			assert.ErrorIs(t, err, ErrInvalidImageKey)
			assert.ErrorIs(t, storage.Delete(context.Background(), key), ErrInvalidImageKey)
		})
	}
}
