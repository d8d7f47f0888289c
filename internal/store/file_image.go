// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

// fileImageStorage keeps recipe images on the local file system under
// baseDir, using the image key as a relative path.
type fileImageStorage struct {
	baseDir string
	logger  *logger.Logger
}

// NewFileImageStorage constructs an [ImageStorage] rooted at baseDir.
func NewFileImageStorage(baseDir string, logger *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating image directory: %w", err)
	}

	logger.Debug().Str("dir", baseDir).Msg("creating file image storage")
	return &fileImageStorage{baseDir: baseDir, logger: logger}, nil
}

// Save writes r to a temporary file next to the target and renames it into
// place, so readers never observe a partially written image.
func (s *fileImageStorage) Save(ctx context.Context, key string, r io.Reader, _ string) error {
	log := logger.FromContext(ctx)

	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating image directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, r); err != nil {
		tmp.Close()
		log.Err(err).Str("func", "*fileImageStorage.Save").Msg("error writing image")
		return fmt.Errorf("error writing image: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing image file: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		log.Err(err).Str("func", "*fileImageStorage.Save").Msg("error moving image into place")
		return fmt.Errorf("error moving image into place: %w", err)
	}

	log.Debug().Str("key", key).Msg("image saved")
	return nil
}

// Delete removes the image stored under key. A missing file is not an error.
func (s *fileImageStorage) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*fileImageStorage.Delete").Msg("error removing image")
		return fmt.Errorf("error removing image: %w", err)
	}
	return nil
}

func (s *fileImageStorage) path(key string) (string, error) {
	if key == "" || filepath.IsAbs(key) || !filepath.IsLocal(filepath.FromSlash(key)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidImageKey, key)
	}

	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if !strings.HasPrefix(path, filepath.Clean(s.baseDir)+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidImageKey, key)
	}
	return path, nil
}
