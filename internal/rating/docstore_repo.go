package rating

import (
	"context"
	"errors"

	"hobbiesapi/internal/docstore"
)

type DocstoreRepo struct {
	store *docstore.Store
}

func NewDocstoreRepo(store *docstore.Store) *DocstoreRepo {
	return &DocstoreRepo{store: store}
}

func key(uid, mediaID string) docstore.Filter {
	return docstore.Filter{"uid": uid, "media_id": mediaID}
}

func mapNotFound(err error) error {
	if errors.Is(err, docstore.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (r *DocstoreRepo) Create(ctx context.Context, mt MediaType, rt *Rating) error {
	_, err := r.store.Collection(mt.Collection()).InsertOne(ctx, rt)
	if errors.Is(err, docstore.ErrDuplicateKey) {
		return ErrAlreadyExists
	}
	return err
}

func (r *DocstoreRepo) Get(ctx context.Context, mt MediaType, uid, mediaID string) (Rating, error) {
	var rt Rating
	err := r.store.Collection(mt.Collection()).FindOne(ctx, key(uid, mediaID), &rt)
	return rt, mapNotFound(err)
}

func (r *DocstoreRepo) ListByUser(ctx context.Context, mt MediaType, uid string) ([]Rating, error) {
	ratings := []Rating{}
	if err := r.store.Collection(mt.Collection()).Find(ctx, docstore.Filter{"uid": uid}, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *DocstoreRepo) Update(ctx context.Context, mt MediaType, uid, mediaID string, set map[string]any) error {
	return mapNotFound(r.store.Collection(mt.Collection()).UpdateOne(ctx, key(uid, mediaID), set))
}

func (r *DocstoreRepo) Delete(ctx context.Context, mt MediaType, uid, mediaID string) error {
	return mapNotFound(r.store.Collection(mt.Collection()).DeleteOne(ctx, key(uid, mediaID)))
}
