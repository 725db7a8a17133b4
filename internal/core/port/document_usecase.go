package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vast-core/internal/core/domain"
)

// DocumentUseCase defines the operations exposed by the VAST ingestion
// service. This interface is the primary port into the application; mock
// implementations are generated from it for testing.
type DocumentUseCase interface {
	// Parse parses a VAST document without storing it. Parse failures are
	// returned as the typed errors of the vast package.
	Parse(ctx context.Context, xml string) (*domain.VAST, error)

	// Ingest parses a VAST document and stores it under a new id. A
	// document that fails to parse is recorded as a failure and the parse
	// error is returned.
	Ingest(ctx context.Context, xml string) (*StoredDocument, error)

	// IngestBatch ingests several documents concurrently. Results are in
	// input order; a parse failure of one document does not stop the rest.
	// The returned error is reserved for storage failures.
	IngestBatch(ctx context.Context, xmls []string) ([]IngestResult, error)

	// GetDocument returns a stored document, or ErrDocumentNotFound.
	GetDocument(ctx context.Context, id uuid.UUID) (*StoredDocument, error)

	// GetStats returns ingestion counts for the requested period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// StoredDocument is a parsed document together with its storage metadata.
type StoredDocument struct {
	ID        uuid.UUID    `json:"id"`
	Document  *domain.VAST `json:"document"`
	RawXML    string       `json:"-"`
	CreatedAt time.Time    `json:"createdAt"`
}

// IngestResult is the outcome of one document of a batch. Exactly one of
// Document and Err is set.
type IngestResult struct {
	Document *StoredDocument
	Err      error
}

// StatsResp contains ingestion counts for a period. Failures are keyed by
// error code.
type StatsResp struct {
	Documents  int64            `json:"documents"`
	InLineAds  int64            `json:"inLineAds"`
	WrapperAds int64            `json:"wrapperAds"`
	Failures   map[string]int64 `json:"failures"`
}

type StatsReq struct {
	From time.Time
	To   time.Time
}
