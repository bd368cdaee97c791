package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/nikmy/rangepicker/pkg/errors"
)

const userLocal = "user"

// IssueToken signs a token letting user manage their own ranges.
func IssueToken(secret string, user int64, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(user, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	return signed, errors.WrapFail(err, "sign token")
}

// ParseToken returns the user a valid unexpired token was issued to.
func ParseToken(secret []byte, raw string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return 0, errors.WrapFail(err, "validate token")
	}
	if !token.Valid {
		return 0, errors.New("invalid token")
	}

	user, err := strconv.ParseInt(claims.Subject, 10, 64)
	return user, errors.WrapFailf(err, "read subject %q", claims.Subject)
}

// authenticate stores the token owner in locals. Without a secret every
// request passes anonymously.
func (s *server) authenticate(c *fiber.Ctx) error {
	if len(s.secret) == 0 {
		return c.Next()
	}

	raw, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if !ok || raw == "" {
		return sendError(c, fiber.StatusUnauthorized, "missing bearer token")
	}

	user, err := ParseToken(s.secret, raw)
	if err != nil {
		s.log.Debug(err)
		return sendError(c, fiber.StatusUnauthorized, "invalid token")
	}

	c.Locals(userLocal, user)
	return c.Next()
}

func authenticatedUser(c *fiber.Ctx) (int64, bool) {
	user, ok := c.Locals(userLocal).(int64)
	return user, ok
}
