package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/itchan-dev/forum-api/shared/domain"
	jwt_internal "github.com/itchan-dev/forum-api/shared/jwt"
	"github.com/itchan-dev/forum-api/shared/logger"
	"github.com/itchan-dev/forum-api/shared/utils"
)

// Key to store the authenticated user id in the request context
type key int

const UserIdKey key = 0

// Auth verifies bearer access tokens issued by jwt_internal.JwtService
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// Sentinel errors for extractUserId
var (
	errNoToken       = errorString("Missing authentication")
	errInvalidClaims = errorString("Invalid token")
)

type errorString string

func (e errorString) Error() string { return string(e) }

func (a *Auth) extractUserId(r *http.Request) (domain.UserId, error) {
	tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || strings.TrimSpace(tokenString) == "" {
		return "", errNoToken
	}

	token, err := a.jwtService.DecodeToken(strings.TrimSpace(tokenString))
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errInvalidClaims
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", errInvalidClaims
	}
	return uid, nil
}

// NeedAuth rejects requests without a valid bearer token and stores the user id in the context.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userId, err := a.extractUserId(r)
			if err != nil {
				switch err {
				case errNoToken:
					utils.WriteUnauthorized(w, errNoToken.Error())
				case errInvalidClaims:
					logger.Log.Error("invalid jwt claims")
					utils.WriteUnauthorized(w, errInvalidClaims.Error())
				default:
					// Token decode error
					utils.WriteErrorAndStatusCode(w, err)
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserIdKey, userId)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIdFromContext returns the acting user id, empty when the request is anonymous
func GetUserIdFromContext(r *http.Request) domain.UserId {
	userId, ok := r.Context().Value(UserIdKey).(domain.UserId)
	if !ok {
		return ""
	}
	return userId
}
