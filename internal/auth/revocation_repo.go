package auth

import (
	"context"
	"errors"
	"time"

	"hobbiesapi/internal/docstore"
)

const RevocationCollection = "revoked_tokens"

type revocation struct {
	JTI       string `json:"jti"`
	UID       string `json:"uid"`
	ExpiresAt int64  `json:"expires_at"`
}

type DocstoreRevocations struct {
	coll *docstore.Collection
	now  func() time.Time
}

func NewDocstoreRevocations(store *docstore.Store) *DocstoreRevocations {
	return &DocstoreRevocations{coll: store.Collection(RevocationCollection), now: time.Now}
}

func (r *DocstoreRevocations) Revoke(ctx context.Context, jti, uid string, expiresAt time.Time) error {
	_, err := r.coll.InsertOne(ctx, revocation{JTI: jti, UID: uid, ExpiresAt: expiresAt.Unix()})
	if errors.Is(err, docstore.ErrDuplicateKey) {
		return nil
	}
	return err
}

func (r *DocstoreRevocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var doc revocation
	err := r.coll.FindOne(ctx, docstore.Filter{"jti": jti}, &doc)
	if errors.Is(err, docstore.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return doc.ExpiresAt > r.now().Unix(), nil
}

func (r *DocstoreRevocations) PurgeExpired(ctx context.Context) (int64, error) {
	return r.coll.DeleteExpired(ctx, "expires_at", r.now())
}
