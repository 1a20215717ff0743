package auth

import (
	"context"
	"time"

	"hobbiesapi/internal/user"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=auth

type UserLookup interface {
	GetByUID(ctx context.Context, uid string) (user.User, error)
}

// RevocationStore remembers logged-out token ids until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, jti, uid string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	PurgeExpired(ctx context.Context) (int64, error)
}
