package domain

// UserSeed is an account provisioned when the authority starts.
type UserSeed struct {
	Username string
	Password string
	Roles    []string
}
