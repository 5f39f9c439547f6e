package model

// TokenManager signs and verifies bearer tokens binding an email claim.
type TokenManager interface {
	Generate(email string) (string, error)
	Parse(token string) (string, error)
}
