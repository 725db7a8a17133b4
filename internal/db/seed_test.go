package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vast-core/internal/core/port"
	"vast-core/internal/core/port/mocks"
	"vast-core/internal/core/vast"
)

// TestSamplesParse ensures every bundled sample is a valid VAST document.
func TestSamplesParse(t *testing.T) {
	names, err := samples.ReadDir("samples")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, entry := range names {
		data, err := samples.ReadFile("samples/" + entry.Name())
		require.NoError(t, err)
		_, err = vast.Parse(string(data))
		assert.NoError(t, err, entry.Name())
	}
}

func TestSeed(t *testing.T) {
	svc := mocks.NewMockDocumentUseCase(t)
	svc.EXPECT().
		IngestBatch(mock.Anything, mock.MatchedBy(func(docs []string) bool { return len(docs) == 3 })).
		Return(make([]port.IngestResult, 3), nil)

	require.NoError(t, Seed(context.Background(), svc))
}

func TestSeedReportsRejectedSample(t *testing.T) {
	svc := mocks.NewMockDocumentUseCase(t)
	results := make([]port.IngestResult, 3)
	results[1].Err = &vast.SyntaxError{Err: errors.New("unexpected EOF")}
	svc.EXPECT().IngestBatch(mock.Anything, mock.Anything).Return(results, nil)

	err := Seed(context.Background(), svc)
	var target *vast.SyntaxError
	assert.ErrorAs(t, err, &target)
}
