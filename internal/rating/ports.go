package rating

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=rating

type Repository interface {
	Create(ctx context.Context, mt MediaType, r *Rating) error
	Get(ctx context.Context, mt MediaType, uid, mediaID string) (Rating, error)
	ListByUser(ctx context.Context, mt MediaType, uid string) ([]Rating, error)
	Update(ctx context.Context, mt MediaType, uid, mediaID string, set map[string]any) error
	Delete(ctx context.Context, mt MediaType, uid, mediaID string) error
}
