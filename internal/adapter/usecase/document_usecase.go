package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"vast-core/internal/core/domain"
	"vast-core/internal/core/port"
	"vast-core/internal/core/vast"
	"vast-core/internal/metrics"
)

// defaultBatchWorkers bounds the number of documents of one batch parsed at
// the same time.
const defaultBatchWorkers = 8

// DocumentUseCase implements port.DocumentUseCase. It drives the VAST parser,
// records metrics and hands parsed documents to the repository.
type DocumentUseCase struct {
	repo    port.DocumentRepository
	parser  *vast.Parser
	metrics *metrics.Metrics
	logger  *slog.Logger

	batchWorkers int
}

// NewDocumentUseCase creates a new usecase with the provided dependencies.
func NewDocumentUseCase(repo port.DocumentRepository, parser *vast.Parser, m *metrics.Metrics, logger *slog.Logger) *DocumentUseCase {
	return &DocumentUseCase{
		repo:         repo,
		parser:       parser,
		metrics:      m,
		logger:       logger,
		batchWorkers: defaultBatchWorkers,
	}
}

// Parse parses xml on a separate goroutine so that a cancelled ctx releases
// the caller immediately. The parse itself runs to completion.
func (u *DocumentUseCase) Parse(ctx context.Context, xml string) (*domain.VAST, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	select {
	case res := <-u.parser.ParseAsync(xml):
		took := time.Since(start)
		if res.Err != nil {
			u.metrics.ObserveFailure(string(vast.ReadCode(res.Err)), took)
			return nil, res.Err
		}
		u.metrics.ObserveSuccess(res.Document, took)
		return res.Document, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Ingest parses xml and stores the result. Rejected documents are recorded
// as parse failures; a failure to record them is logged, not returned.
func (u *DocumentUseCase) Ingest(ctx context.Context, xml string) (*port.StoredDocument, error) {
	doc, err := u.Parse(ctx, xml)
	if err != nil {
		if isParseError(err) {
			failure := port.ParseFailure{
				ID:        uuid.New(),
				Code:      string(vast.ReadCode(err)),
				Message:   err.Error(),
				CreatedAt: time.Now().UTC(),
			}
			if serr := u.repo.SaveFailure(ctx, failure); serr != nil {
				u.logger.Error("save parse failure", slog.Any("error", serr))
			}
		}
		return nil, err
	}

	stored := &port.StoredDocument{
		ID:        uuid.New(),
		Document:  doc,
		RawXML:    xml,
		CreatedAt: time.Now().UTC(),
	}
	if err = u.repo.SaveDocument(ctx, stored); err != nil {
		return nil, err
	}
	u.logger.Debug("document ingested", slog.String("id", stored.ID.String()), slog.Int("ads", len(doc.Ads)))
	return stored, nil
}

// IngestBatch ingests xmls with at most batchWorkers documents in flight.
// Parse failures are reported per document; the first storage failure
// cancels the batch and is returned.
func (u *DocumentUseCase) IngestBatch(ctx context.Context, xmls []string) ([]port.IngestResult, error) {
	results := make([]port.IngestResult, len(xmls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.batchWorkers)
	for i, xml := range xmls {
		g.Go(func() error {
			stored, err := u.Ingest(gctx, xml)
			if err != nil {
				if isParseError(err) {
					results[i].Err = err
					return nil
				}
				return err
			}
			results[i].Document = stored
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// GetDocument returns a stored document by id.
func (u *DocumentUseCase) GetDocument(ctx context.Context, id uuid.UUID) (*port.StoredDocument, error) {
	return u.repo.GetDocument(ctx, id)
}

// GetStats returns aggregated ingestion stats in a period.
func (u *DocumentUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.repo.GetStats(ctx, req)
}

// isParseError reports whether err was produced by the parser rather than by
// storage or cancellation.
func isParseError(err error) bool {
	var c vast.Coder
	return errors.As(err, &c)
}
