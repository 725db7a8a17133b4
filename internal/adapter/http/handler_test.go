package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vast-core/internal/core/domain"
	"vast-core/internal/core/port"
	"vast-core/internal/core/port/mocks"
	"vast-core/internal/core/vast"
)

const emptyVAST = `<VAST version="3.0"/>`

func newTestHandler(t *testing.T, maxBody int64) (*mocks.MockDocumentUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockDocumentUseCase(t)
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "test"}))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, reg, maxBody, logger).Router()
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestParse(t *testing.T) {
	svc, h := newTestHandler(t, 1024)
	svc.EXPECT().Parse(mock.Anything, emptyVAST).Return(&domain.VAST{Version: "3.0", Ads: []domain.Ad{}}, nil)

	rec := do(h, http.MethodPost, "/api/v1/vast/parse", emptyVAST)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc domain.VAST
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&doc))
	assert.Equal(t, "3.0", doc.Version)
	assert.Empty(t, doc.Ads)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"syntax", &vast.SyntaxError{Err: errors.New("unexpected EOF")}, http.StatusBadRequest, "xml-syntax"},
		{"conflict", &vast.ConflictingVariantError{Path: "VAST/Ad[1]"}, http.StatusUnprocessableEntity, "conflicting-variant"},
		{"missing", &vast.MissingMandatoryElementError{Path: "VAST/Ad[1]", Element: "InLine|Wrapper"}, http.StatusUnprocessableEntity, "missing-mandatory-element"},
		{"limit", &vast.LimitExceededError{Limit: "depth", Max: 4}, http.StatusRequestEntityTooLarge, "limit-exceeded"},
		{"cancelled", context.Canceled, http.StatusServiceUnavailable, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, h := newTestHandler(t, 1024)
			svc.EXPECT().Parse(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := do(h, http.MethodPost, "/api/v1/vast/parse", "<VAST>")
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestParseBodyTooLarge(t *testing.T) {
	_, h := newTestHandler(t, 8)

	rec := do(h, http.MethodPost, "/api/v1/vast/parse", emptyVAST)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "limit-exceeded", decodeError(t, rec).Code)
}

func TestIngest(t *testing.T) {
	svc, h := newTestHandler(t, 1024)
	id := uuid.New()
	svc.EXPECT().Ingest(mock.Anything, emptyVAST).Return(&port.StoredDocument{
		ID:        id,
		Document:  &domain.VAST{Ads: []domain.Ad{}},
		RawXML:    emptyVAST,
		CreatedAt: time.Now(),
	}, nil)

	rec := do(h, http.MethodPost, "/api/v1/vast/documents", emptyVAST)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/vast/documents/"+id.String(), rec.Header().Get("Location"))
	assert.NotContains(t, rec.Body.String(), "rawXml")
}

func TestIngestInternalError(t *testing.T) {
	svc, h := newTestHandler(t, 1024)
	svc.EXPECT().Ingest(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	rec := do(h, http.MethodPost, "/api/v1/vast/documents", emptyVAST)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", decodeError(t, rec).Message)
}

func TestIngestBatch(t *testing.T) {
	svc, h := newTestHandler(t, 1024)
	id := uuid.New()
	svc.EXPECT().IngestBatch(mock.Anything, []string{emptyVAST, "<VAST>"}).Return([]port.IngestResult{
		{Document: &port.StoredDocument{ID: id}},
		{Err: &vast.SyntaxError{Err: errors.New("unexpected EOF")}},
	}, nil)

	body := `{"documents":["<VAST version=\"3.0\"/>","<VAST>"]}`
	rec := do(h, http.MethodPost, "/api/v1/vast/documents/batch", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []batchItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	require.Len(t, items, 2)
	require.NotNil(t, items[0].ID)
	assert.Equal(t, id, *items[0].ID)
	require.NotNil(t, items[1].Error)
	assert.Equal(t, "xml-syntax", items[1].Error.Code)
}

func TestIngestBatchInvalid(t *testing.T) {
	_, h := newTestHandler(t, 1024)

	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPost, "/api/v1/vast/documents/batch", `{`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPost, "/api/v1/vast/documents/batch", `{"documents":[]}`).Code)
}

func TestGetDocument(t *testing.T) {
	svc, h := newTestHandler(t, 1024)
	id := uuid.New()
	svc.EXPECT().GetDocument(mock.Anything, id).Return(&port.StoredDocument{ID: id, Document: &domain.VAST{}}, nil)

	rec := do(h, http.MethodGet, "/api/v1/vast/documents/"+id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}

func TestGetDocumentNotFound(t *testing.T) {
	svc, h := newTestHandler(t, 1024)
	svc.EXPECT().GetDocument(mock.Anything, mock.Anything).Return(nil, port.ErrDocumentNotFound)

	rec := do(h, http.MethodGet, "/api/v1/vast/documents/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDocumentInvalidID(t *testing.T) {
	_, h := newTestHandler(t, 1024)

	rec := do(h, http.MethodGet, "/api/v1/vast/documents/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsOverview(t *testing.T) {
	svc, h := newTestHandler(t, 1024)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	svc.EXPECT().
		GetStats(mock.Anything, mock.MatchedBy(func(req port.StatsReq) bool {
			return req.From.Equal(from) && req.To.Equal(to)
		})).
		Return(&port.StatsResp{Documents: 3, InLineAds: 2, WrapperAds: 1, Failures: map[string]int64{"xml-syntax": 1}}, nil)

	rec := do(h, http.MethodGet, "/api/v1/stats/overview?from=2024-01-01T00:00:00Z&to=2024-01-02T00:00:00Z", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats port.StatsResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, int64(3), stats.Documents)
	assert.Equal(t, int64(1), stats.Failures["xml-syntax"])
}

func TestStatsOverviewInvalid(t *testing.T) {
	_, h := newTestHandler(t, 1024)

	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodGet, "/api/v1/stats/overview?from=yesterday", "").Code)
	assert.Equal(t, http.StatusBadRequest,
		do(h, http.MethodGet, "/api/v1/stats/overview?from=2024-01-02T00:00:00Z&to=2024-01-01T00:00:00Z", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	_, h := newTestHandler(t, 1024)

	rec := do(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_total")
}
