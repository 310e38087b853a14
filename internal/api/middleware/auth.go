package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ProfileService/internal/integrations/hotelapi"
)

var (
	// ErrMissingToken возвращается, когда в запросе нет токена
	ErrMissingToken = errors.New("auth: missing token")

	// ErrInvalidToken возвращается, когда токен не разбирается или не проходит проверку
	ErrInvalidToken = errors.New("auth: invalid token")
)

type subjectKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth читает токен пользователя из cookie или заголовка Authorization.
// Токен пробрасывается в hotel API как есть, subject из него привязывает сессию страницы.
type Auth struct {
	cookieName string
	secret     []byte
	logger     Logger
}

// NewAuth создает middleware авторизации.
// С пустым secret подпись токена не проверяется, её проверяет hotel API.
func NewAuth(cookieName, secret string, logger Logger) *Auth {
	a := &Auth{cookieName: cookieName, logger: logger}
	if secret != "" {
		a.secret = []byte(secret)
	}
	return a
}

// Require пропускает запрос только с валидным токеном, иначе вызывает denied
func (a *Auth) Require(denied http.HandlerFunc) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			creds, token := a.credentials(r)
			if token == "" {
				a.logger.Warn("%s %s - %v", r.Method, r.URL.Path, ErrMissingToken)
				denied(w, r)
				return
			}

			subject, err := a.subject(token)
			if err != nil {
				a.logger.Warn("%s %s - %v", r.Method, r.URL.Path, err)
				denied(w, r)
				return
			}

			ctx := hotelapi.WithCredentials(r.Context(), creds)
			ctx = WithSubject(ctx, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *Auth) credentials(r *http.Request) (hotelapi.Credentials, string) {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		return hotelapi.Credentials{BearerToken: token}, token
	}

	cookie, err := r.Cookie(a.cookieName)
	if err != nil || cookie.Value == "" {
		return hotelapi.Credentials{}, ""
	}
	return hotelapi.Credentials{Cookie: a.cookieName + "=" + cookie.Value}, cookie.Value
}

func (a *Auth) subject(token string) (string, error) {
	claims := jwt.MapClaims{}

	if a.secret == nil {
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	} else {
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return a.secret, nil
		}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
		if err != nil || !parsed.Valid {
			return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("%w: no subject", ErrInvalidToken)
	}
	return subject, nil
}

// WithSubject кладёт subject пользователя в контекст
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// SubjectFromContext достаёт subject пользователя из контекста
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey{}).(string)
	return subject, ok && subject != ""
}
