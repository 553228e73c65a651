package service

import "context"

// OAuthUser represents the identity asserted by a verified ID token.
type OAuthUser struct {
	Subject       string // Provider-specific user id ('sub' claim).
	Email         string
	EmailVerified bool
	Name          string
	AvatarURL     string
}

// IDTokenVerifier verifies ID tokens sent by clients after Google Sign-In.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
