package middleware

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/itchan-dev/forum-api/shared/api"
	"github.com/itchan-dev/forum-api/shared/middleware/ratelimiter"
	"github.com/itchan-dev/forum-api/shared/utils"
)

// RateLimit rejects requests with 429 once the identity's bucket is empty.
// A nil limiter disables the check.
func RateLimit(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rl == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				utils.WriteJSON(w, http.StatusTooManyRequests, api.Response{
					Status:  api.StatusFail,
					Message: "Rate limit exceeded, try again later",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIdentity keys the limiter by the authenticated user, so it must run after NeedAuth.
func GetUserIdentity(r *http.Request) (string, error) {
	userId := GetUserIdFromContext(r)
	if userId == "" {
		return "", errors.New("Can't get user id")
	}
	return "user_" + userId, nil
}

// GetIP extracts the client IP from RemoteAddr, proxy headers are not trusted
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}
	return ip, nil
}
