package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "launchpad/internal/delivery/context"
	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"
	"launchpad/internal/domain/repository"
	"launchpad/internal/domain/service"
	"launchpad/internal/usecase"
	"launchpad/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxUsernameAttempts = 20

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	googleIDToken service.IDTokenVerifier // nil when Google Sign-In is not configured
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	GoogleIDToken service.IDTokenVerifier `optional:"true"`
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		googleIDToken: params.GoogleIDToken,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an email/password account and signs it in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        normalizeEmail(input.Email),
		PasswordHash: hash,
		FullName:     strings.TrimSpace(input.FullName),
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserConflict) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", user.ID))

	return srv.issueTokens(user)
}

// Login verifies the password of an email/password account.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	// Google-only accounts have no password to match.
	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueTokens(user)
}

// RefreshToken exchanges a refresh token for a new pair.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return srv.issueTokens(user)
}

// GoogleLogin verifies a Google ID token and signs in the matching account,
// linking or creating it by email.
func (srv *authService) GoogleLogin(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	if srv.googleIDToken == nil {
		return nil, domainerrors.ErrOAuthNotConfigured
	}

	identity, err := srv.googleIDToken.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed
	}
	if identity.Email == "" || !identity.EmailVerified {
		return nil, domainerrors.ErrOAuthFailed.WithMessage("Google account email is not verified")
	}

	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(identity.Email))
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		user, err = srv.createGoogleUser(ctx, identity)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user")
	case user.GoogleSubject == "":
		user.GoogleSubject = identity.Subject
		if user.AvatarURL == "" {
			user.AvatarURL = identity.AvatarURL
		}
		if err := srv.userRepo.Update(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to link google account")
		}
		srv.log(ctx).Info("Linked Google account", slog.Int64("userID", user.ID))
	case user.GoogleSubject != identity.Subject:
		return nil, domainerrors.ErrOAuthFailed.WithMessage("Email is linked to a different Google account")
	}

	return srv.issueTokens(user)
}

func (srv *authService) createGoogleUser(ctx context.Context, identity *service.OAuthUser) (*entity.User, error) {
	email := normalizeEmail(identity.Email)
	base := util.Slugify(strings.SplitN(email, "@", 2)[0])

	for attempt := 0; attempt < maxUsernameAttempts; attempt++ {
		username := base
		if attempt > 0 {
			username = base + "-" + strconv.Itoa(attempt+1)
		}

		_, err := srv.userRepo.FindByUsername(ctx, username)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check username")
		}

		user := &entity.User{
			Username:      username,
			Email:         email,
			GoogleSubject: identity.Subject,
			FullName:      identity.Name,
			AvatarURL:     identity.AvatarURL,
		}
		if err := srv.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserConflict) {
				continue
			}

			return nil, errors.Wrap(err, "failed to create user")
		}

		srv.log(ctx).Info("Created account from Google Sign-In", slog.Int64("userID", user.ID))

		return user, nil
	}

	return nil, domainerrors.ErrUserAlreadyExists.WithMessage("Could not allocate a username")
}

func (srv *authService) Me(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *authService) UpdateProfile(ctx context.Context, userID int64, update entity.ProfileUpdate) (*entity.User, error) {
	user, err := srv.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	update.Apply(user)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

func (srv *authService) issueTokens(user *entity.User) (*usecase.AuthOutput, error) {
	access, refresh, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
		User:         user,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
