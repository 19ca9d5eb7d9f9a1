package domain

import "context"

// TokenPair is issued on login: a short-lived access token for bearer
// auth and a long-lived refresh token persisted server side.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenManager signs and verifies the JWTs used by the API.
type TokenManager interface {
	// GenerateAccessToken mints a short-lived access token for u.
	GenerateAccessToken(u User) (string, error)

	// GenerateRefreshToken mints a long-lived refresh token for u.
	GenerateRefreshToken(u User) (string, error)

	// VerifyRefreshToken checks the signature and expiry of a refresh
	// token and returns the identity it carries.
	// Returns ErrBadParamInput if the token is not a valid refresh token.
	VerifyRefreshToken(token string) (User, error)
}

// AuthenticationRepository persists issued refresh tokens so they can be
// revoked on logout and required on refresh.
type AuthenticationRepository interface {
	Store(ctx context.Context, token string) error

	// VerifyExists returns ErrBadParamInput if the token was never
	// issued or has been revoked.
	VerifyExists(ctx context.Context, token string) error

	Delete(ctx context.Context, token string) error
}

// AuthUsecase handles the authentications resource: login, token
// refresh and logout.
type AuthUsecase interface {
	// Login verifies the credentials and issues a token pair.
	// Returns ErrUnauthorized on unknown username or wrong password.
	Login(ctx context.Context, username, password string) (TokenPair, error)

	// RefreshAccessToken exchanges a registered refresh token for a new
	// access token. Returns ErrBadParamInput if the token is invalid or
	// not registered.
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)

	// Logout revokes a registered refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
