package imagestore

import (
	"context"
	"mime/multipart"
	"strings"
)

// Store is the media-host capability the inventory and project modules call.
// Upload returns a durable public URL; Delete removes the remote object
// addressed by its public ID. Calls are synchronous, with no retries.
type Store interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, publicID string) error
}

// PublicID derives the delete identifier from an image URL: the last path
// segment with everything after the first dot stripped. Deletes target the
// wrong remote object if this derivation changes.
func PublicID(url string) string {
	segments := strings.Split(url, "/")
	last := segments[len(segments)-1]
	return strings.SplitN(last, ".", 2)[0]
}
