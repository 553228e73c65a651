// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"launchpad/config"
	"launchpad/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// validateFunc matches idtoken.Validate so tests can swap it out.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type idTokenVerifier struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewIDTokenVerifier returns nil when no client id is configured; the auth use
// case answers Google sign-in requests with OAUTH_NOT_CONFIGURED in that case.
func NewIDTokenVerifier(cfg *config.Config, logger *slog.Logger) service.IDTokenVerifier {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		logger.Info("Google sign-in disabled: googleOAuth.clientId is empty")

		return nil
	}

	return &idTokenVerifier{
		clientID: cfg.GoogleOAuth.ClientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken checks signature, audience and expiry, then extracts the profile claims.
func (v *idTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		v.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid Google ID token")
	}

	user := &service.OAuthUser{
		Subject:       payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
		Name:          stringClaim(payload.Claims, "name"),
		AvatarURL:     stringClaim(payload.Claims, "picture"),
	}
	if user.Subject == "" || user.Email == "" {
		return nil, errors.New("Google ID token is missing subject or email")
	}

	return user, nil
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return s
}

// boolClaim accepts both JSON booleans and the "true" strings some issuers send.
func boolClaim(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
