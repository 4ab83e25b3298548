package domain

import "github.com/samber/lo"

const RoleAdmin = "admin"

// Identity is the verified caller of one gRPC call or stream.
// Roles stay nil until an authority resolves them.
type Identity struct {
	SubjectID string
	Roles     []string
	RawToken  string
}

// Authorization is the authority's verdict for a token.
type Authorization struct {
	Subject string
	Roles   []string
}

func (a Authorization) HasRole(role string) bool {
	return lo.Contains(a.Roles, role)
}
