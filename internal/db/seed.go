package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"vast-core/internal/core/port"
)

//go:embed samples/*.xml
var samples embed.FS

// Seed ingests the bundled sample VAST documents through svc, so they are
// parsed, counted in metrics and stored like any client upload.
func Seed(ctx context.Context, svc port.DocumentUseCase) error {
	names, err := fs.Glob(samples, "samples/*.xml")
	if err != nil {
		return err
	}
	docs := make([]string, 0, len(names))
	for _, name := range names {
		data, err := samples.ReadFile(name)
		if err != nil {
			return err
		}
		docs = append(docs, string(data))
	}

	results, err := svc.IngestBatch(ctx, docs)
	if err != nil {
		return err
	}
	for i, res := range results {
		if res.Err != nil {
			return fmt.Errorf("seed %s: %w", path.Base(names[i]), res.Err)
		}
	}
	return nil
}
