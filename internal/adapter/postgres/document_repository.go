package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vast-core/internal/core/domain"
	"vast-core/internal/core/port"
)

// DocumentRepository implements port.DocumentRepository using pgxpool for PostgreSQL.
type DocumentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository returns a new repository instance.
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

// SaveDocument inserts the document and one row per ad in a single transaction.
func (r *DocumentRepository) SaveDocument(ctx context.Context, doc *port.StoredDocument) (err error) {
	parsed, err := json.Marshal(doc.Document)
	if err != nil {
		return err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO documents (id, version, sequence, raw_xml, parsed, ad_count, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		doc.ID, doc.Document.Version, doc.Document.Sequence, doc.RawXML, parsed, len(doc.Document.Ads), doc.CreatedAt)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for i, ad := range doc.Document.Ads {
		adSystem, tagURI := adSummary(ad)
		batch.Queue(`INSERT INTO ads (document_id, position, ad_id, kind, ad_system, vast_ad_tag_uri)
VALUES ($1,$2,$3,$4,$5,$6)`, doc.ID, i, ad.ID, string(ad.Kind()), adSystem, tagURI)
	}
	if batch.Len() > 0 {
		err = tx.SendBatch(ctx, batch).Close()
	}
	return err
}

// SaveFailure inserts a rejected document record.
func (r *DocumentRepository) SaveFailure(ctx context.Context, failure port.ParseFailure) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO parse_failures (id, code, message, created_at) VALUES ($1,$2,$3,$4)`,
		failure.ID, failure.Code, failure.Message, failure.CreatedAt)
	return err
}

// GetDocument returns a stored document by id.
func (r *DocumentRepository) GetDocument(ctx context.Context, id uuid.UUID) (*port.StoredDocument, error) {
	var (
		doc    port.StoredDocument
		parsed []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT id, raw_xml, parsed, created_at FROM documents WHERE id = $1`, id).
		Scan(&doc.ID, &doc.RawXML, &parsed, &doc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	doc.Document = new(domain.VAST)
	if err = json.Unmarshal(parsed, doc.Document); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetStats returns aggregated ingestion counts in a period.
func (r *DocumentRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	resp := port.StatsResp{Failures: map[string]int64{}}

	err := r.pool.QueryRow(ctx, `SELECT COALESCE(count(*),0) FROM documents WHERE created_at >= $1 AND created_at <= $2`,
		req.From, req.To).Scan(&resp.Documents)
	if err != nil {
		return nil, err
	}

	err = r.pool.QueryRow(ctx, `SELECT
    COALESCE(count(*) FILTER (WHERE a.kind = $3),0),
    COALESCE(count(*) FILTER (WHERE a.kind = $4),0)
FROM ads a
JOIN documents d ON d.id = a.document_id
WHERE d.created_at >= $1 AND d.created_at <= $2`,
		req.From, req.To, string(domain.AdKindInLine), string(domain.AdKindWrapper)).
		Scan(&resp.InLineAds, &resp.WrapperAds)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT code, count(*) FROM parse_failures
WHERE created_at >= $1 AND created_at <= $2 GROUP BY code`, req.From, req.To)
	if err != nil {
		return nil, err
	}
	type codeCount struct {
		Code  string
		Count int64
	}
	counts, err := pgx.CollectRows(rows, pgx.RowToStructByPos[codeCount])
	if err != nil {
		return nil, err
	}
	for _, c := range counts {
		resp.Failures[c.Code] = c.Count
	}
	return &resp, nil
}

// adSummary extracts the indexed columns of an ad row.
func adSummary(ad domain.Ad) (adSystem, tagURI string) {
	if in, ok := ad.InLine(); ok {
		return in.AdSystem.Name, ""
	}
	if w, ok := ad.Wrapper(); ok {
		return w.AdSystem, w.VASTAdTagURI
	}
	return "", ""
}
