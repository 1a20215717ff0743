package auth

import (
	"context"
	"errors"
	"time"

	"hobbiesapi/internal/logging"
	"hobbiesapi/internal/platform/crypto"
	"hobbiesapi/internal/user"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// Session is the authenticated user plus a signed bearer token.
type Session struct {
	User      user.User
	Token     string
	ExpiresAt time.Time
}

type Service struct {
	secret      string
	ttl         time.Duration
	users       UserLookup
	revocations RevocationStore
}

func NewService(secret string, ttl time.Duration, users UserLookup, revocations RevocationStore) *Service {
	return &Service{
		secret:      secret,
		ttl:         ttl,
		users:       users,
		revocations: revocations,
	}
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (Session, error) {
	u, err := s.users.GetByUID(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Session{}, ErrUserNotFound
		}
		return Session{}, err
	}
	if !crypto.VerifyPassword(u.Password, password) {
		return Session{}, ErrIncorrectPassword
	}

	issued, err := crypto.GenerateToken(s.secret, u.UID, s.ttl)
	if err != nil {
		return Session{}, err
	}
	u.Password = ""
	return Session{User: u, Token: issued.Token, ExpiresAt: issued.ExpiresAt}, nil
}

// Logout revokes the token described by claims.
func (s *Service) Logout(ctx context.Context, claims *crypto.Claims) error {
	return s.revocations.Revoke(ctx, claims.ID, claims.UID(), claims.ExpiresAtTime())
}

// IsRevoked lets the service act as httpx.RevocationChecker.
func (s *Service) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.revocations.IsRevoked(ctx, jti)
}

// RunRevocationJanitor drops expired revocations every interval until ctx
// is done.
func (s *Service) RunRevocationJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.revocations.PurgeExpired(ctx)
			if err != nil {
				logging.Warn().Err(err).Msg("failed to purge expired token revocations")
				continue
			}
			if removed > 0 {
				logging.Debug().Int64("removed", removed).Msg("purged expired token revocations")
			}
		}
	}
}
