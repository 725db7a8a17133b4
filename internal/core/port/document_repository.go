package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository defines the persistence layer for parsed documents. It
// is an outbound port in hexagonal architecture. Implementations must be
// safe for concurrent use.
type DocumentRepository interface {
	// SaveDocument stores a parsed document and one row per ad atomically.
	SaveDocument(ctx context.Context, doc *StoredDocument) error
	// SaveFailure records a document that could not be parsed.
	SaveFailure(ctx context.Context, failure ParseFailure) error
	// GetDocument returns a stored document by id, or ErrDocumentNotFound.
	GetDocument(ctx context.Context, id uuid.UUID) (*StoredDocument, error)
	// GetStats returns aggregated counts for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// ParseFailure is a rejected document.
type ParseFailure struct {
	ID        uuid.UUID
	Code      string
	Message   string
	CreatedAt time.Time
}
