package service

import (
	"context"
	"errors"

	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
	"github.com/itchan-dev/forum-api/shared/logger"
	"github.com/itchan-dev/forum-api/shared/validation"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, payload []byte) (domain.AddedUser, error)
	Login(ctx context.Context, payload []byte) (string, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

type Auth struct {
	users UserStorage
	jwt   Jwt
	cost  int
}

func NewAuth(users UserStorage, jwt Jwt) *Auth {
	return &Auth{users: users, jwt: jwt, cost: bcrypt.DefaultCost}
}

// Register validates the payload, hashes the password and stores the user.
func (a *Auth) Register(ctx context.Context, payload []byte) (domain.AddedUser, error) {
	body, err := validation.RegisterPayload(payload)
	if err != nil {
		return domain.AddedUser{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), a.cost)
	if err != nil {
		// multibyte passwords can pass the rune limit and still exceed 72 bytes
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return domain.AddedUser{}, internal_errors.Validation(domain.MsgPasswordTooLong)
		}
		logger.Log.Error("failed to hash password", "error", err)
		return domain.AddedUser{}, err
	}

	user := domain.User{
		Id:        domain.NewId(domain.UserIdPrefix),
		Username:  body.Username,
		Fullname:  body.Fullname,
		PassHash:  string(passHash),
		CreatedAt: now(),
	}
	if err := a.users.AddUser(ctx, user); err != nil {
		return domain.AddedUser{}, err
	}

	return domain.AddedUser{Id: user.Id, Username: user.Username, Fullname: user.Fullname}, nil
}

// Login checks the credentials and returns an access token.
func (a *Auth) Login(ctx context.Context, payload []byte) (string, error) {
	body, err := validation.LoginPayload(payload)
	if err != nil {
		return "", err
	}

	user, err := a.users.GetUserByUsername(ctx, body.Username)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return "", internal_errors.Validation(domain.MsgUsernameUnknown)
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(body.Password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.Log.Error("password verification failed", "user_id", user.Id, "error", err)
		}
		return "", internal_errors.Unauthenticated(domain.MsgWrongCredentials)
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}
	return token, nil
}
