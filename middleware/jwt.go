package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// RoleAdmin is the only role the gateway issues.
const RoleAdmin = "admin"

const principalKey = "principal"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Principal is the identity decoded from a verified token.
type Principal struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Claims is the JWT payload: {id, email, role} plus iat/exp.
type Claims struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 tokens with a single secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock returns a copy of m that stamps tokens using now.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	clone := *m
	clone.now = now
	return &clone
}

// GenerateJWT issues a token for the account, returning it with its expiry.
func (m *TokenManager) GenerateJWT(id uint, email, role string) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.ttl)

	claims := Claims{
		ID:    id,
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(id),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseJWT verifies signature, algorithm and expiry and returns the principal.
func (m *TokenManager) ParseJWT(tokenString string) (*Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.ID == 0 || claims.Role != RoleAdmin || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	return &Principal{
		ID:        claims.ID,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// ExtractBearer returns the token part of an "Authorization: Bearer <token>" header.
func ExtractBearer(header string) (string, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", ErrMissingToken
	}
	token := strings.TrimSpace(header[len("Bearer "):])
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// Authorize validates an Authorization header value.
func (m *TokenManager) Authorize(header string) (*Principal, error) {
	token, err := ExtractBearer(header)
	if err != nil {
		return nil, err
	}
	return m.ParseJWT(token)
}

// JWTMiddleware rejects requests without a valid bearer token and stores the
// principal for downstream handlers.
func JWTMiddleware(m *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := m.Authorize(c.Get(fiber.HeaderAuthorization))
		switch {
		case errors.Is(err, ErrMissingToken):
			return JsonResponse(c, fiber.StatusUnauthorized, true, "Access denied. No token provided.", nil)
		case err != nil:
			return JsonResponse(c, fiber.StatusUnauthorized, true, "Invalid token.", nil)
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// CurrentPrincipal returns the principal stored by JWTMiddleware.
func CurrentPrincipal(c *fiber.Ctx) (*Principal, bool) {
	principal, ok := c.Locals(principalKey).(*Principal)
	return principal, ok && principal != nil
}
