package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wishpay/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errInvalidLogin = fmt.Errorf("%w: the email or password is wrong", ErrUnauthorized)

type Service struct {
	db     *gorm.DB
	issuer *Issuer
}

func NewService(db *gorm.DB, issuer *Issuer) *Service {
	return &Service{db: db, issuer: issuer}
}

// Session is the result of a successful registration or login.
type Session struct {
	User  models.User
	Token string
}

// Register creates a user with an empty wallet and logs them in.
func (s *Service) Register(ctx context.Context, name, email, password string) (Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	err = s.db.WithContext(ctx).Create(&user).Error
	if errors.Is(err, models.ErrUserEmailNotUnique) {
		return Session{}, ErrEmailTaken
	} else if err != nil {
		return Session{}, err
	}

	return s.session(user)
}

// Login checks the credentials and returns a new session. Users without a
// password cannot log in here.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return Session{}, errInvalidLogin
	} else if err != nil {
		return Session{}, err
	}

	if !user.HasPassword() {
		return Session{}, errInvalidLogin
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return Session{}, errInvalidLogin
	}

	return s.session(user)
}

// Authenticate verifies the token and checks that its user still exists.
func (s *Service) Authenticate(ctx context.Context, token string) (models.User, error) {
	id, err := s.issuer.Verify(token)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	err = s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, fmt.Errorf("%w: the user does not exist", ErrUnauthorized)
	} else if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (s *Service) session(user models.User) (Session, error) {
	token, _, err := s.issuer.Issue(user.ID)
	if err != nil {
		return Session{}, err
	}

	return Session{User: user, Token: token}, nil
}
