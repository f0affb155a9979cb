package auth

import "github.com/promptmixer/promptmixer-backend/internal/domain"

// Result is a successful login: a signed bearer token and the user it
// belongs to.
type Result struct {
	AccessToken string
	User        *domain.User
}
