package rating

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Create stores a new rating for uid. A second rating for the same media
// id fails with ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, mt MediaType, uid string, r Rating) (Rating, error) {
	_, err := s.repo.Get(ctx, mt, uid, r.MediaID)
	if err == nil {
		return Rating{}, ErrAlreadyExists
	}
	if !errors.Is(err, ErrNotFound) {
		return Rating{}, err
	}

	now := s.now()
	r.ID = uuid.NewString()
	r.UID = uid
	r.CreatedAt = now
	r.UpdatedAt = now
	if err := s.repo.Create(ctx, mt, &r); err != nil {
		return Rating{}, err
	}
	return r, nil
}

func (s *Service) Get(ctx context.Context, mt MediaType, uid, mediaID string) (Rating, error) {
	return s.repo.Get(ctx, mt, uid, mediaID)
}

func (s *Service) ListByUser(ctx context.Context, mt MediaType, uid string) ([]Rating, error) {
	return s.repo.ListByUser(ctx, mt, uid)
}

// Update applies p and returns the stored result. An empty patch only
// checks that the rating exists.
func (s *Service) Update(ctx context.Context, mt MediaType, uid, mediaID string, p Patch) (Rating, error) {
	if !p.empty() {
		set := p.fields()
		set["updated_at"] = s.now()
		if err := s.repo.Update(ctx, mt, uid, mediaID, set); err != nil {
			return Rating{}, err
		}
	}
	return s.repo.Get(ctx, mt, uid, mediaID)
}

func (s *Service) Delete(ctx context.Context, mt MediaType, uid, mediaID string) error {
	return s.repo.Delete(ctx, mt, uid, mediaID)
}
