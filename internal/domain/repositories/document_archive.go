package repositories

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// DocumentArchive keeps a copy of uploaded source documents
type DocumentArchive interface {
	// Archive stores the document and returns its object key
	Archive(ctx context.Context, sessionID uuid.UUID, fileName string, body io.Reader, size int64) (string, error)
}
