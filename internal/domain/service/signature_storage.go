package service

import "context"

// SignatureStorage stores captured signature images and returns a retrievable address.
type SignatureStorage interface {
	// Upload stores a PNG under key and returns its public URL.
	Upload(ctx context.Context, key string, png []byte) (string, error)

	// Fetch returns the image behind a URL previously returned by Upload.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Delete removes the object behind a URL. Missing objects are not an error.
	Delete(ctx context.Context, url string) error
}
