package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "wishpay"

var (
	ErrUnauthorized = errors.New("you are not authorized, please log in")
	ErrEmailTaken   = errors.New("a user with this email address exists already")
	ErrSecretEmpty  = errors.New("the token secret must not be empty")
)

// Issuer signs and verifies bearer tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret []byte, ttl time.Duration) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, ErrSecretEmpty
	}

	return &Issuer{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue returns a signed token for the user and its expiry.
func (i *Issuer) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := i.now()
	expires := now.Add(i.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expires, nil
}

// Verify checks the token and returns the ID of the user it was issued for.
func (i *Issuer) Verify(token string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(_ *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: the token subject is not a user", ErrUnauthorized)
	}

	return id, nil
}
