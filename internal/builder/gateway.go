package builder

import (
	"context"

	"github.com/google/uuid"
)

// Gateway is the load/save boundary for page documents. Save creates the
// page when doc.ID is nil and overwrites it otherwise; the returned
// document carries the server-assigned id and slug.
type Gateway interface {
	Load(ctx context.Context, id uuid.UUID) (*PageDocument, error)
	LoadBySlug(ctx context.Context, slug string) (*PageDocument, error)
	Save(ctx context.Context, doc PageDocument) (*PageDocument, error)
}
