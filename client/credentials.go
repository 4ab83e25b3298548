// Package client holds the helpers shared by chat clients.
package client

import (
	"context"
)

// TokenCredentials attaches the bearer token to every call.
type TokenCredentials struct {
	token    string
	insecure bool
}

// NewTokenCredentials builds per-RPC credentials. insecure allows the token
// to travel over a plaintext connection.
func NewTokenCredentials(token string, insecure bool) TokenCredentials {
	return TokenCredentials{token: token, insecure: insecure}
}

func (c TokenCredentials) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + c.token}, nil
}

func (c TokenCredentials) RequireTransportSecurity() bool {
	return !c.insecure
}
