// Package account holds the messages and service descriptor of the identity authority.
package account

type AuthenticationRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *AuthenticationRequest) GetUsername() string {
	if r == nil {
		return ""
	}
	return r.Username
}

func (r *AuthenticationRequest) GetPassword() string {
	if r == nil {
		return ""
	}
	return r.Password
}

type AuthenticationResponse struct {
	Token string `json:"token"`
}

func (r *AuthenticationResponse) GetToken() string {
	if r == nil {
		return ""
	}
	return r.Token
}

type AuthorizationRequest struct {
	Token string `json:"token"`
}

func (r *AuthorizationRequest) GetToken() string {
	if r == nil {
		return ""
	}
	return r.Token
}

type AuthorizationResponse struct {
	UserId string   `json:"user_id"`
	Roles  []string `json:"roles"`
}

func (r *AuthorizationResponse) GetUserId() string {
	if r == nil {
		return ""
	}
	return r.UserId
}

func (r *AuthorizationResponse) GetRoles() []string {
	if r == nil {
		return nil
	}
	return r.Roles
}
