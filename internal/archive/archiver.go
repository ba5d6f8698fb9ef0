package archive

import "context"

// Archiver stores a submitted image and resolves a public URL for it.
// Archiving is best-effort; callers proceed without an image reference when
// it fails.
type Archiver interface {
	ArchiveImage(ctx context.Context, data []byte) (string, error)
}
