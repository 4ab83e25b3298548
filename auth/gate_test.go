package auth_test

import (
	"chatroom/auth"
	"chatroom/domain"
	"chatroom/errors"
	"chatroom/mocks"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGate_Require(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	identity := domain.Identity{SubjectID: "bob", RawToken: "raw-token"}
	ctx := auth.WithIdentity(context.Background(), identity)

	t.Run("should allow an admin", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		authority := mocks.NewMockIAuthority(ctrl)
		gate := auth.NewGate(authority, time.Second, log)

		authority.EXPECT().
			Authorize(gomock.Any(), "raw-token").
			Return(domain.Authorization{Subject: "bob", Roles: []string{"user", domain.RoleAdmin}}, nil).
			Times(1)

		req.NoError(gate.Require(ctx, domain.RoleAdmin))
	})

	t.Run("should deny when admin role is missing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		authority := mocks.NewMockIAuthority(ctrl)
		gate := auth.NewGate(authority, time.Second, log)

		authority.EXPECT().
			Authorize(gomock.Any(), "raw-token").
			Return(domain.Authorization{Subject: "bob", Roles: []string{"user"}}, nil)

		req.ErrorIs(gate.Require(ctx, domain.RoleAdmin), errors.ErrPermissionDenied)
	})

	t.Run("should fail closed when the authority errors", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		authority := mocks.NewMockIAuthority(ctrl)
		gate := auth.NewGate(authority, time.Second, log)

		authority.EXPECT().
			Authorize(gomock.Any(), gomock.Any()).
			Return(domain.Authorization{}, fmt.Errorf("connection refused"))

		err := gate.Require(ctx, domain.RoleAdmin)
		req.ErrorIs(err, errors.ErrAuthorityUnavailable)
		req.NotErrorIs(err, errors.ErrPermissionDenied)
	})

	t.Run("should keep the authority verdict on invalid token", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		authority := mocks.NewMockIAuthority(ctrl)
		gate := auth.NewGate(authority, time.Second, log)

		authority.EXPECT().
			Authorize(gomock.Any(), gomock.Any()).
			Return(domain.Authorization{}, errors.ErrInvalidToken)

		req.ErrorIs(gate.Require(ctx, domain.RoleAdmin), errors.ErrInvalidToken)
	})

	t.Run("should bound the authority call with a timeout", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		authority := mocks.NewMockIAuthority(ctrl)
		gate := auth.NewGate(authority, 20*time.Millisecond, log)

		authority.EXPECT().
			Authorize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, token string) (domain.Authorization, error) {
				<-ctx.Done()
				return domain.Authorization{}, ctx.Err()
			})

		start := time.Now()
		err := gate.Require(ctx, domain.RoleAdmin)
		req.ErrorIs(err, errors.ErrAuthorityUnavailable)
		req.Less(time.Since(start), time.Second)
	})

	t.Run("should reject a context without identity", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		authority := mocks.NewMockIAuthority(ctrl)
		gate := auth.NewGate(authority, time.Second, log)

		authority.EXPECT().Authorize(gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(gate.Require(context.Background(), domain.RoleAdmin), errors.ErrTokenMissing)
	})
}
