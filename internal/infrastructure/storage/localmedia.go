// Package storage keeps uploaded ticket images on the local filesystem.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

// ImageDir is the media-relative directory ticket images are stored in.
const ImageDir = "img/reviews"

// sniffLen is how much of an upload is inspected to detect its type.
const sniffLen = 3072

var allowedImages = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// LocalMediaStore writes images below root and serves them under urlPrefix.
type LocalMediaStore struct {
	root      string
	urlPrefix string
	maxBytes  int64
	logger    logger.Interface
}

func NewLocalMediaStore(root, urlPrefix string, maxUploadMB int, log logger.Interface) *LocalMediaStore {
	if maxUploadMB < 1 {
		maxUploadMB = 5
	}
	return &LocalMediaStore{
		root:      root,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		maxBytes:  int64(maxUploadMB) << 20,
		logger:    log,
	}
}

// Root is the directory served as media.
func (s *LocalMediaStore) Root() string {
	return s.root
}

// Save stores r under a fresh name and returns its media-relative path. The
// extension must be an allowed image type and match the content.
func (s *LocalMediaStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	wantMIME, ok := allowedImages[ext]
	if !ok {
		return "", errors.NewValidationError("unsupported image type",
			"allowed extensions: .jpg, .jpeg, .png, .gif, .webp")
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return "", errors.NewValidationError("image is empty")
	}
	if detected := mimetype.Detect(head); !detected.Is(wantMIME) {
		return "", errors.NewValidationError("image content does not match its extension")
	}

	dir := filepath.Join(s.root, filepath.FromSlash(ImageDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	name := uuid.NewString() + ext
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		// No-op once renamed.
		_ = os.Remove(tmp.Name())
	}()

	body := io.MultiReader(bytes.NewReader(head), r)
	written, err := io.Copy(tmp, io.LimitReader(body, s.maxBytes+1))
	closeErr := tmp.Close()
	if err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if closeErr != nil {
		return "", fmt.Errorf("failed to write image: %w", closeErr)
	}
	if written > s.maxBytes {
		return "", errors.NewValidationError(fmt.Sprintf("image exceeds %d MB", s.maxBytes>>20))
	}

	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	stored := path.Join(ImageDir, name)
	s.logger.Infow("image stored", "path", stored, "bytes", written)
	return stored, nil
}

// Delete removes a stored image. Missing files are not an error.
func (s *LocalMediaStore) Delete(ctx context.Context, mediaPath string) error {
	full, err := s.resolve(mediaPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// URL maps a media-relative path to the URL it is served under.
func (s *LocalMediaStore) URL(mediaPath string) string {
	if mediaPath == "" {
		return ""
	}
	return s.urlPrefix + "/" + strings.TrimLeft(mediaPath, "/")
}

func (s *LocalMediaStore) resolve(mediaPath string) (string, error) {
	clean := path.Clean("/" + mediaPath)
	if !strings.HasPrefix(clean, "/"+ImageDir+"/") {
		return "", fmt.Errorf("refusing to touch media path outside %s: %q", ImageDir, mediaPath)
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}
