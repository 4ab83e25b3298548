package auth

import (
	"chatroom/domain"
	"chatroom/errors"
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// MetadataKey carries the bearer token on every call.
const MetadataKey = "authorization"

const bearerPrefix = "Bearer "

// Authenticator verifies the bearer token of each inbound call and binds an Identity
// to the call context. Roles are left unresolved: only the Gate asks the authority.
type Authenticator struct {
	tokens *TokenManager
	log    *slog.Logger
}

func NewAuthenticator(tokens *TokenManager, log *slog.Logger) *Authenticator {
	return &Authenticator{tokens: tokens, log: log}
}

// Authenticate returns a context enriched with the caller identity.
func (a *Authenticator) Authenticate(ctx context.Context) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, errors.ErrTokenMissing
	}
	values := md.Get(MetadataKey)
	if len(values) == 0 || values[0] == "" {
		return nil, errors.ErrTokenMissing
	}
	rawToken := strings.TrimPrefix(values[0], bearerPrefix)

	claims, err := a.tokens.Validate(rawToken)
	if err != nil {
		return nil, err
	}

	return WithIdentity(ctx, domain.Identity{
		SubjectID: claims.Subject,
		RawToken:  rawToken,
	}), nil
}

// Unary rejects unauthenticated unary calls before the handler runs.
func (a *Authenticator) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any,
		info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		newCtx, err := a.Authenticate(ctx)
		if err != nil {
			a.log.Debug("Call rejected", "method", info.FullMethod, "error", err)
			return nil, errors.MapToGRPCError(err)
		}
		return handler(newCtx, req)
	}
}

// Stream does the same for streams. The stream is wrapped so that
// handlers read the identity from stream.Context().
func (a *Authenticator) Stream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream,
		info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		newCtx, err := a.Authenticate(ss.Context())
		if err != nil {
			a.log.Debug("Stream rejected", "method", info.FullMethod, "error", err)
			return errors.MapToGRPCError(err)
		}
		return handler(srv, &authenticatedStream{ServerStream: ss, ctx: newCtx})
	}
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context {
	return s.ctx
}
