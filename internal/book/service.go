package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"hobbiesapi/internal/platform/goodreads"
	"hobbiesapi/internal/platform/upstream"
)

var (
	ErrNotFound      = errors.New("book not found")
	ErrUpstream      = errors.New("book provider failed")
	ErrQueryTooShort = errors.New("search title too short")
)

const MinQueryLength = 3

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Get returns the normalized GoodReads record for id.
func (s *Service) Get(ctx context.Context, id string) (goodreads.BookSummary, error) {
	b, err := s.source.Book(ctx, id)
	if err != nil {
		return goodreads.BookSummary{}, classify(err)
	}
	return b, nil
}

// Search returns one summary per matching work, never nil.
func (s *Service) Search(ctx context.Context, title string) ([]goodreads.SearchResultSummary, error) {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < MinQueryLength {
		return nil, ErrQueryTooShort
	}
	results, err := s.source.Search(ctx, title)
	if err != nil {
		return nil, classify(err)
	}
	if results == nil {
		results = []goodreads.SearchResultSummary{}
	}
	return results, nil
}

func classify(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if upstream.IsNotFound(err) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}
