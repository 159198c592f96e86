package content

import (
	"context"
	"io"

	"litreview/internal/shared/logger"
)

// ImageUpload is an image submitted with a ticket.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// ImageStore persists uploaded ticket images. Save returns the media-relative
// path to store on the ticket.
type ImageStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
}

// DiscardImage removes a stored image whose ticket was not persisted or no
// longer references it. Failures are logged, never returned.
func DiscardImage(ctx context.Context, store ImageStore, log logger.Interface, path string) {
	if path == "" || store == nil {
		return
	}
	if err := store.Delete(ctx, path); err != nil {
		log.Warnw("failed to delete ticket image", "path", path, "error", err)
	}
}
