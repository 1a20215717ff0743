package media

import (
	"context"

	"github.com/goccy/go-json"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=media

// AnimeSource serves anime and manga metadata (Jikan).
type AnimeSource interface {
	Anime(ctx context.Context, id string) (json.RawMessage, error)
	Manga(ctx context.Context, id string) (json.RawMessage, error)
	SearchAnime(ctx context.Context, query string) (json.RawMessage, error)
	SearchManga(ctx context.Context, query string) (json.RawMessage, error)
}

// MovieSource serves movie metadata (TMDB).
type MovieSource interface {
	Movie(ctx context.Context, id string) (json.RawMessage, error)
	SearchMovies(ctx context.Context, query string) (json.RawMessage, error)
}
