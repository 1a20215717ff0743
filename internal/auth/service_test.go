package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hobbiesapi/internal/platform/crypto"
	"hobbiesapi/internal/user"
)

const testSecret = "test-secret"

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := crypto.HashPassword(password)
	require.NoError(t, err)
	return h
}

func TestService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := NewMockUserLookup(ctrl)
	service := NewService(testSecret, time.Hour, users, NewMockRevocationStore(ctrl))
	ctx := context.Background()

	stored := user.User{UID: "jdoe", FirstName: "Jane", Password: hashed(t, "Secret123!")}

	t.Run("success", func(t *testing.T) {
		users.EXPECT().GetByUID(gomock.Any(), "jdoe").Return(stored, nil)

		session, err := service.Authenticate(ctx, "jdoe", "Secret123!")
		require.NoError(t, err)
		assert.Equal(t, "Jane", session.User.FirstName)
		assert.Empty(t, session.User.Password)

		claims, err := crypto.ParseToken(testSecret, session.Token)
		require.NoError(t, err)
		assert.Equal(t, "jdoe", claims.UID())
		assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)
	})

	t.Run("unknown user", func(t *testing.T) {
		users.EXPECT().GetByUID(gomock.Any(), "ghost").Return(user.User{}, user.ErrNotFound)

		_, err := service.Authenticate(ctx, "ghost", "Secret123!")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		users.EXPECT().GetByUID(gomock.Any(), "jdoe").Return(stored, nil)

		_, err := service.Authenticate(ctx, "jdoe", "nope")
		assert.ErrorIs(t, err, ErrIncorrectPassword)
	})

	t.Run("store failure", func(t *testing.T) {
		users.EXPECT().GetByUID(gomock.Any(), "jdoe").Return(user.User{}, errors.New("db down"))

		_, err := service.Authenticate(ctx, "jdoe", "Secret123!")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	revocations := NewMockRevocationStore(ctrl)
	service := NewService(testSecret, time.Hour, NewMockUserLookup(ctrl), revocations)

	issued, err := crypto.GenerateToken(testSecret, "jdoe", time.Hour)
	require.NoError(t, err)
	claims, err := crypto.ParseToken(testSecret, issued.Token)
	require.NoError(t, err)

	revocations.EXPECT().Revoke(gomock.Any(), issued.JTI, "jdoe", claims.ExpiresAtTime()).Return(nil)
	require.NoError(t, service.Logout(context.Background(), claims))

	revocations.EXPECT().IsRevoked(gomock.Any(), issued.JTI).Return(true, nil)
	revoked, err := service.IsRevoked(context.Background(), issued.JTI)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestService_RunRevocationJanitor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	revocations := NewMockRevocationStore(ctrl)
	service := NewService(testSecret, time.Hour, NewMockUserLookup(ctrl), revocations)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var once sync.Once
	purged := make(chan struct{})
	revocations.EXPECT().PurgeExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		once.Do(func() {
			close(purged)
			cancel()
		})
		return 2, nil
	}).MinTimes(1)

	done := make(chan struct{})
	go func() {
		service.RunRevocationJanitor(ctx, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
	<-purged
}
