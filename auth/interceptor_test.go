package auth_test

import (
	"chatroom/auth"
	"chatroom/domain"
	pb "chatroom/proto/chat"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newAuthenticator() (*auth.Authenticator, *auth.TokenManager) {
	tokens := auth.NewTokenManager("secret", auth.DefaultIssuer, time.Hour)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewAuthenticator(tokens, log), tokens
}

func incoming(token string) context.Context {
	md := metadata.Pairs(auth.MetadataKey, "Bearer "+token)
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestAuthenticator_Unary(t *testing.T) {
	authenticator, tokens := newAuthenticator()
	info := &grpc.UnaryServerInfo{FullMethod: pb.ChatRoomService_CreateRoom_FullMethodName}

	t.Run("should fail when metadata is missing", func(t *testing.T) {
		req := require.New(t)
		called := false
		handler := func(ctx context.Context, req any) (any, error) {
			called = true
			return nil, nil
		}

		_, err := authenticator.Unary()(context.Background(), nil, info, handler)

		req.Equal(codes.Unauthenticated, status.Code(err))
		req.Contains(err.Error(), "token missing")
		req.False(called)
	})

	t.Run("should fail when the token field is absent", func(t *testing.T) {
		req := require.New(t)
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-client-id", "cli"))

		called := false

		_, err := authenticator.Unary()(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
			called = true
			return nil, nil
		})

		req.Equal(codes.Unauthenticated, status.Code(err))
		req.False(called)
	})

	t.Run("should fail with invalid token and carry the cause", func(t *testing.T) {
		req := require.New(t)

		_, err := authenticator.Unary()(incoming("invalid-token-string"), nil, info,
			func(ctx context.Context, req any) (any, error) { return nil, nil })

		req.Equal(codes.Unauthenticated, status.Code(err))
		req.Contains(err.Error(), "invalid token")
		req.Contains(err.Error(), "malformed")
	})

	t.Run("should inject the identity when token is valid", func(t *testing.T) {
		req := require.New(t)
		token, err := tokens.Generate("user-123")
		req.NoError(err)

		res, err := authenticator.Unary()(incoming(token), nil, info,
			func(ctx context.Context, req any) (any, error) { return ctx, nil })
		req.NoError(err)

		identity, ok := auth.IdentityFromContext(res.(context.Context))
		req.True(ok)
		req.Equal(domain.Identity{SubjectID: "user-123", RawToken: token}, identity)
		req.Nil(identity.Roles)
	})
}

type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s fakeStream) Context() context.Context { return s.ctx }

func TestAuthenticator_Stream(t *testing.T) {
	authenticator, tokens := newAuthenticator()
	info := &grpc.StreamServerInfo{FullMethod: pb.ChatStreamService_Chat_FullMethodName, IsClientStream: true, IsServerStream: true}

	t.Run("should reject a stream without token", func(t *testing.T) {
		req := require.New(t)
		called := false

		err := authenticator.Stream()(nil, fakeStream{ctx: context.Background()}, info,
			func(srv any, stream grpc.ServerStream) error {
				called = true
				return nil
			})

		req.Equal(codes.Unauthenticated, status.Code(err))
		req.False(called)
	})

	t.Run("should expose the identity through stream.Context", func(t *testing.T) {
		req := require.New(t)
		token, err := tokens.Generate("alice")
		req.NoError(err)

		var subject string
		err = authenticator.Stream()(nil, fakeStream{ctx: incoming(token)}, info,
			func(srv any, stream grpc.ServerStream) error {
				identity, ok := auth.IdentityFromContext(stream.Context())
				req.True(ok)
				subject = identity.SubjectID
				return nil
			})

		req.NoError(err)
		req.Equal("alice", subject)
	})

	t.Run("should not leak identity between concurrent streams", func(t *testing.T) {
		req := require.New(t)
		aliceToken, _ := tokens.Generate("alice")
		bobToken, _ := tokens.Generate("bob")
		seen := make(chan string, 2)

		run := func(token string) {
			_ = authenticator.Stream()(nil, fakeStream{ctx: incoming(token)}, info,
				func(srv any, stream grpc.ServerStream) error {
					identity, _ := auth.IdentityFromContext(stream.Context())
					seen <- identity.SubjectID + ":" + identity.RawToken
					return nil
				})
		}
		go run(aliceToken)
		go run(bobToken)

		got := []string{<-seen, <-seen}
		req.ElementsMatch([]string{"alice:" + aliceToken, "bob:" + bobToken}, got)
	})
}
