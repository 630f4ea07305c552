package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/advising-studio/engine/internal/api/envelope"
	"github.com/advising-studio/engine/pkg/logger"
)

type principalKeyType string

const (
	principalKey     principalKeyType = "principal"
	principalSlotKey principalKeyType = "principal_slot"
)

// principalSlot lets outer middleware see the caller that Authenticate
// resolves further down the chain.
type principalSlot struct {
	mu sync.Mutex
	p  Principal
	ok bool
}

func (s *principalSlot) set(p Principal) {
	s.mu.Lock()
	s.p, s.ok = p, true
	s.mu.Unlock()
}

func (s *principalSlot) get() (Principal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p, s.ok
}

// Principal is the authenticated caller taken from a verified JWT.
type Principal struct {
	ID   string
	Role string
}

var errNoSecret = errors.New("jwt secret not configured")

// Authenticate verifies an HMAC-signed JWT from the Authorization header or
// the auth cookie and stores the caller in context. Requests without a usable
// token pass through anonymously, so a stale cookie never blocks public routes
// or logout; RequireRole guards what needs a caller.
func Authenticate(hmacSecret []byte, cookieName string) func(http.Handler) http.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	keyFunc := func(*jwt.Token) (interface{}, error) {
		if len(hmacSecret) == 0 {
			return nil, errNoSecret
		}
		return hmacSecret, nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r, cookieName)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims := jwt.MapClaims{}
			token, err := parser.ParseWithClaims(tokenStr, claims, keyFunc)
			if err != nil || !token.Valid {
				logger.L().Debug("ignoring unverifiable token",
					zap.String("id", GetRequestID(r.Context())),
					zap.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}
			sub, _ := claims.GetSubject()
			role, _ := claims["role"].(string)
			if sub == "" {
				next.ServeHTTP(w, r)
				return
			}

			p := Principal{ID: sub, Role: role}
			if slot, ok := r.Context().Value(principalSlotKey).(*principalSlot); ok {
				slot.set(p)
			}
			ctx := context.WithValue(r.Context(), principalKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole lets through only callers holding role: 401 when anonymous,
// 403 when authenticated with another role.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok {
				envelope.Failure(w, r, http.StatusUnauthorized, "Authentication required")
				return
			}
			if p.Role != role {
				envelope.Failure(w, r, http.StatusForbidden, "Insufficient privileges")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PrincipalFrom returns the caller stored by Authenticate.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

func bearerToken(r *http.Request, cookieName string) string {
	if ah := r.Header.Get("Authorization"); ah != "" {
		if len(ah) > len("bearer ") && strings.EqualFold(ah[:len("bearer ")], "bearer ") {
			return strings.TrimSpace(ah[len("bearer "):])
		}
		return ""
	}
	if cookieName == "" {
		return ""
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}
