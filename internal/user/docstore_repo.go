package user

import (
	"context"
	"errors"
	"time"

	"hobbiesapi/internal/docstore"
)

// Collection holds one document per account.
const Collection = "users"

// document is the stored form. Unlike User it keeps the password hash.
type document struct {
	UID       string    `json:"uid"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

type DocstoreRepo struct {
	coll *docstore.Collection
}

func NewDocstoreRepo(store *docstore.Store) *DocstoreRepo {
	return &DocstoreRepo{coll: store.Collection(Collection)}
}

func (r *DocstoreRepo) Create(ctx context.Context, u *User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctx, document{
		UID:       u.UID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
	})
	if errors.Is(err, docstore.ErrDuplicateKey) {
		return ErrAlreadyExists
	}
	return err
}

func (r *DocstoreRepo) GetByUID(ctx context.Context, uid string) (User, error) {
	var doc document
	if err := r.coll.FindOne(ctx, docstore.Filter{"uid": uid}, &doc); err != nil {
		if errors.Is(err, docstore.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return User{
		UID:       doc.UID,
		FirstName: doc.FirstName,
		LastName:  doc.LastName,
		Email:     doc.Email,
		Password:  doc.Password,
		CreatedAt: doc.CreatedAt,
	}, nil
}
