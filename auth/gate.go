package auth

import (
	"chatroom/contract"
	"chatroom/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"
)

// Gate resolves the caller roles through the authority on every privileged call.
// There is no role cache: an unreachable authority rejects the call.
type Gate struct {
	authority contract.IAuthority
	timeout   time.Duration
	log       *slog.Logger
}

func NewGate(authority contract.IAuthority, timeout time.Duration, log *slog.Logger) *Gate {
	return &Gate{authority: authority, timeout: timeout, log: log}
}

func (g *Gate) Require(ctx context.Context, role string) error {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return errors.ErrTokenMissing
	}

	authCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	authorization, err := g.authority.Authorize(authCtx, identity.RawToken)
	if err != nil {
		g.log.Warn("Authorization failed", "subject", identity.SubjectID, "error", err)
		if stderrors.Is(err, errors.ErrInvalidToken) ||
			stderrors.Is(err, errors.ErrPermissionDenied) ||
			stderrors.Is(err, errors.ErrAuthorityUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", errors.ErrAuthorityUnavailable, err)
	}

	if !authorization.HasRole(role) {
		return fmt.Errorf("%w: %s role is required", errors.ErrPermissionDenied, role)
	}
	return nil
}
