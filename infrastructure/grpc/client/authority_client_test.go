package client

import (
	"chatroom/errors"
	pb "chatroom/proto/account"
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeAuthority struct {
	token string
	resp  *pb.AuthorizationResponse
	err   error
}

func (f fakeAuthority) Authenticate(context.Context, *pb.AuthenticationRequest, ...grpc.CallOption) (*pb.AuthenticationResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.AuthenticationResponse{Token: f.token}, nil
}

func (f fakeAuthority) Authorization(context.Context, *pb.AuthorizationRequest, ...grpc.CallOption) (*pb.AuthorizationResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestAuthorityClient_Authorize(t *testing.T) {
	req := require.New(t)
	client := NewAuthorityClient(fakeAuthority{resp: &pb.AuthorizationResponse{UserId: "u1", Roles: []string{"admin"}}})

	authorization, err := client.Authorize(context.Background(), "token")

	req.NoError(err)
	req.Equal("u1", authorization.Subject)
	req.Equal([]string{"admin"}, authorization.Roles)
}

func TestAuthorityClient_Authenticate(t *testing.T) {
	req := require.New(t)
	client := NewAuthorityClient(fakeAuthority{token: "jwt"})

	token, err := client.Authenticate(context.Background(), "alice", "s3cret")

	req.NoError(err)
	req.Equal("jwt", token)
}

func TestAuthorityClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		authorize error
		authn     error
	}{
		{"unauthenticated", status.Error(codes.Unauthenticated, "bad"), errors.ErrInvalidToken, errors.ErrInvalidCredentials},
		{"permission denied", status.Error(codes.PermissionDenied, "no"), errors.ErrPermissionDenied, errors.ErrPermissionDenied},
		{"unavailable", status.Error(codes.Unavailable, "down"), errors.ErrAuthorityUnavailable, errors.ErrAuthorityUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), errors.ErrAuthorityUnavailable, errors.ErrAuthorityUnavailable},
		{"internal", status.Error(codes.Internal, "boom"), errors.ErrAuthorityUnavailable, errors.ErrAuthorityUnavailable},
		{"not a status", stderrors.New("raw"), errors.ErrAuthorityUnavailable, errors.ErrAuthorityUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			client := NewAuthorityClient(fakeAuthority{err: tt.err})

			_, err := client.Authorize(context.Background(), "token")
			req.ErrorIs(err, tt.authorize)

			_, err = client.Authenticate(context.Background(), "alice", "s3cret")
			req.ErrorIs(err, tt.authn)
		})
	}
}
