package pkg

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrRefreshExpired    = errors.New("refresh expired")
	ErrRefreshInvalid    = errors.New("refresh invalid")
	ErrTokenParseFailure = errors.New("token parse failure")
)

const (
	AccessTTL  = time.Minute * 30
	RefreshTTL = time.Hour * 24
)

var (
	accessSecret  = []byte("secret-key")
	refreshSecret = []byte("refresh-key")
)

// InitJWT overrides the built-in dev secrets with configured ones.
func InitJWT(access, refresh string) {
	accessSecret = []byte(access)
	refreshSecret = []byte(refresh)
}

// Claims carry the stable identity key (email) and a role snapshot so
// middleware can gate admin routes without a DB round trip. Ownership
// and badge decisions always re-resolve against the directory.
type Claims struct {
	UserID uint64   `json:"user_id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func GeneratePair(userID uint64, email string, roles []string) (*Pair, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			Subject:   "access",
		},
	})
	accessToken, err := access.SignedString(accessSecret)
	if err != nil {
		return nil, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(RefreshTTL)),
			Subject:   "refresh",
		},
	})
	refreshToken, err := refresh.SignedString(refreshSecret)
	if err != nil {
		return nil, err
	}

	return &Pair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func ParseAccess(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrTokenInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, err
		}
	}
	if !token.Valid {
		return nil, ErrTokenParseFailure
	}
	return token.Claims.(*Claims), nil
}

// ParseRefresh exposes the refresh claims so the service can re-read
// the user's roles before issuing a fresh pair.
func ParseRefresh(refreshToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(refreshToken, &Claims{}, func(t *jwt.Token) (any, error) {
		return refreshSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrRefreshExpired
		}
		return nil, ErrRefreshInvalid
	}
	if !token.Valid {
		return nil, ErrRefreshInvalid
	}
	return token.Claims.(*Claims), nil
}
