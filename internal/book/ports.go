package book

import (
	"context"

	"hobbiesapi/internal/platform/goodreads"
)

//go:generate mockgen -source=ports.go -destination=mock_source_test.go -package=book

// Source is the book metadata provider (GoodReads).
type Source interface {
	Book(ctx context.Context, id string) (goodreads.BookSummary, error)
	Search(ctx context.Context, query string) ([]goodreads.SearchResultSummary, error)
}
