package client

import (
	"chatroom/domain"
	"chatroom/errors"
	pb "chatroom/proto/account"
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AuthorityClient is the chat server's view of the identity authority.
type AuthorityClient struct {
	client pb.AuthenticationServiceClient
}

func NewAuthorityClient(client pb.AuthenticationServiceClient) *AuthorityClient {
	return &AuthorityClient{client: client}
}

func (a *AuthorityClient) Authenticate(ctx context.Context, username, password string) (string, error) {
	resp, err := a.client.Authenticate(ctx, &pb.AuthenticationRequest{Username: username, Password: password})
	if err != nil {
		return "", fromStatus(err, errors.ErrInvalidCredentials)
	}
	return resp.GetToken(), nil
}

func (a *AuthorityClient) Authorize(ctx context.Context, token string) (domain.Authorization, error) {
	resp, err := a.client.Authorization(ctx, &pb.AuthorizationRequest{Token: token})
	if err != nil {
		return domain.Authorization{}, fromStatus(err, errors.ErrInvalidToken)
	}
	return domain.Authorization{Subject: resp.GetUserId(), Roles: resp.GetRoles()}, nil
}

// fromStatus maps an authority failure back to a domain error.
// Anything that is not a verdict, timeouts included, means the authority is unavailable.
func fromStatus(err error, unauthenticated error) error {
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", unauthenticated, st.Message())
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", errors.ErrPermissionDenied, st.Message())
	default:
		return fmt.Errorf("%w: %s", errors.ErrAuthorityUnavailable, st.Message())
	}
}
