package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vast-core/internal/core/domain"
	"vast-core/internal/core/port"
	"vast-core/internal/core/port/mocks"
	"vast-core/internal/core/vast"
	"vast-core/internal/metrics"
)

const (
	wrapperXML = `<VAST version="3.0"><Ad id="w1"><Wrapper>` +
		`<AdSystem>TestAdSystem</AdSystem><VASTAdTagURI>http://localhost/inline.xml</VASTAdTagURI>` +
		`<Impression>http://localhost/imp</Impression></Wrapper></Ad></VAST>`
	conflictXML = `<VAST><Ad id="x"><InLine/><Wrapper/></Ad></VAST>`
)

func newUseCase(t *testing.T, repo port.DocumentRepository) *DocumentUseCase {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDocumentUseCase(repo, vast.NewParser(), metrics.New(prometheus.NewRegistry()), logger)
}

// TestIngestStoresDocument ensures a parsed document reaches the repository.
func TestIngestStoresDocument(t *testing.T) {
	repo := mocks.NewMockDocumentRepository(t)
	repo.EXPECT().
		SaveDocument(mock.Anything, mock.AnythingOfType("*port.StoredDocument")).
		Return(nil)

	svc := newUseCase(t, repo)
	stored, err := svc.Ingest(context.Background(), wrapperXML)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.Equal(t, wrapperXML, stored.RawXML)
	require.Len(t, stored.Document.Ads, 1)
	assert.Equal(t, domain.AdKindWrapper, stored.Document.Ads[0].Kind())
}

// TestIngestRecordsFailure ensures rejected documents are stored as failures.
func TestIngestRecordsFailure(t *testing.T) {
	repo := mocks.NewMockDocumentRepository(t)
	repo.EXPECT().
		SaveFailure(mock.Anything, mock.MatchedBy(func(f port.ParseFailure) bool {
			return f.Code == string(vast.CodeConflictingVariant) && f.Message != ""
		})).
		Return(nil)

	svc := newUseCase(t, repo)
	stored, err := svc.Ingest(context.Background(), conflictXML)
	assert.Nil(t, stored)
	var target *vast.ConflictingVariantError
	require.ErrorAs(t, err, &target)
}

// TestIngestFailureNotRecordedError ensures a failing failure log does not
// mask the parse error.
func TestIngestFailureNotRecordedError(t *testing.T) {
	repo := mocks.NewMockDocumentRepository(t)
	repo.EXPECT().
		SaveFailure(mock.Anything, mock.Anything).
		Return(errors.New("db down"))

	_, err := newUseCase(t, repo).Ingest(context.Background(), `<VAST><Ad>`)
	var target *vast.SyntaxError
	require.ErrorAs(t, err, &target)
}

func TestIngestStorageError(t *testing.T) {
	repo := mocks.NewMockDocumentRepository(t)
	dbErr := errors.New("db down")
	repo.EXPECT().SaveDocument(mock.Anything, mock.Anything).Return(dbErr)

	_, err := newUseCase(t, repo).Ingest(context.Background(), wrapperXML)
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, isParseError(err))
}

func TestParseCancelled(t *testing.T) {
	repo := mocks.NewMockDocumentRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc, err := newUseCase(t, repo).Parse(ctx, wrapperXML)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestIngestBatch ensures concurrent ingestion keeps input order and stores
// each good document exactly once.
func TestIngestBatch(t *testing.T) {
	repo := mocks.NewMockDocumentRepository(t)

	var (
		mu    sync.Mutex
		saved = map[string]int{}
	)
	repo.EXPECT().
		SaveDocument(mock.Anything, mock.AnythingOfType("*port.StoredDocument")).
		Run(func(ctx context.Context, doc *port.StoredDocument) {
			mu.Lock()
			defer mu.Unlock()
			saved[doc.RawXML]++
		}).
		Return(nil)
	repo.EXPECT().SaveFailure(mock.Anything, mock.Anything).Return(nil)

	inputs := make([]string, 0, 20)
	for i := 0; i < 10; i++ {
		inputs = append(inputs, wrapperXML, conflictXML)
	}

	results, err := newUseCase(t, repo).IngestBatch(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))

	for i, res := range results {
		if i%2 == 0 {
			assert.NoError(t, res.Err)
			require.NotNil(t, res.Document)
			assert.Equal(t, wrapperXML, res.Document.RawXML)
		} else {
			assert.Nil(t, res.Document)
			assert.Equal(t, vast.CodeConflictingVariant, vast.ReadCode(res.Err))
		}
	}
	assert.Equal(t, 10, saved[wrapperXML])
}

func TestIngestBatchStorageFailure(t *testing.T) {
	repo := mocks.NewMockDocumentRepository(t)
	dbErr := errors.New("db down")
	repo.EXPECT().SaveDocument(mock.Anything, mock.Anything).Return(dbErr)

	results, err := newUseCase(t, repo).IngestBatch(context.Background(), []string{wrapperXML, wrapperXML})
	assert.Nil(t, results)
	assert.ErrorIs(t, err, dbErr)
}
