package media

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"hobbiesapi/internal/platform/upstream"
)

var (
	ErrNotFound      = errors.New("media not found")
	ErrUpstream      = errors.New("upstream provider failed")
	ErrQueryTooShort = errors.New("search title too short")
	ErrUnknownKind   = errors.New("unknown media kind")
)

// MinQueryLength is the shortest title accepted by Search.
const MinQueryLength = 3

type Kind string

const (
	KindAnime Kind = "anime"
	KindManga Kind = "manga"
	KindMovie Kind = "movie"
)

type Service struct {
	anime  AnimeSource
	movies MovieSource
}

func NewService(anime AnimeSource, movies MovieSource) *Service {
	return &Service{anime: anime, movies: movies}
}

// Get returns the provider's detail object for id unchanged.
func (s *Service) Get(ctx context.Context, kind Kind, id string) (json.RawMessage, error) {
	var (
		raw json.RawMessage
		err error
	)
	switch kind {
	case KindAnime:
		raw, err = s.anime.Anime(ctx, id)
	case KindManga:
		raw, err = s.anime.Manga(ctx, id)
	case KindMovie:
		raw, err = s.movies.Movie(ctx, id)
	default:
		return nil, ErrUnknownKind
	}
	if err != nil {
		return nil, classify(kind, err)
	}
	return raw, nil
}

// Search returns the provider's result array for title.
func (s *Service) Search(ctx context.Context, kind Kind, title string) (json.RawMessage, error) {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < MinQueryLength {
		return nil, ErrQueryTooShort
	}

	var (
		raw json.RawMessage
		err error
	)
	switch kind {
	case KindAnime:
		raw, err = s.anime.SearchAnime(ctx, title)
	case KindManga:
		raw, err = s.anime.SearchManga(ctx, title)
	case KindMovie:
		raw, err = s.movies.SearchMovies(ctx, title)
	default:
		return nil, ErrUnknownKind
	}
	if err != nil {
		return nil, classify(kind, err)
	}
	return raw, nil
}

func classify(kind Kind, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if upstream.IsNotFound(err) {
		return fmt.Errorf("%s: %w", kind, ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", kind, ErrUpstream, err)
}
