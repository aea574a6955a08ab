package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/domain"
)

const (
	msgNoToken          = "No token provided"
	msgTokenExpired     = "Token expired"
	msgInvalidToken     = "Invalid token"
	msgProviderRequired = "Provider access required"
	msgCustomerRequired = "Customer access required"
)

type ctxKey int

const (
	userKey ctxKey = iota
	requestIDKey
)

// Claims полезная нагрузка JWT
type Claims struct {
	UserID   int64  `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// User аутентифицированный пользователь запроса
type User struct {
	ID    int64
	Email string
	Type  domain.UserType
}

// WithUser кладёт пользователя в контекст
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// GetUser достаёт пользователя из контекста
func GetUser(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey).(User)
	return u, ok
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	u, ok := GetUser(ctx)
	return u.ID, ok
}

// Auth проверяет Bearer JWT (HMAC)
type Auth struct {
	secret []byte
	logger Logger
}

// NewAuth создает middleware аутентификации
func NewAuth(secret string, logger Logger) *Auth {
	return &Auth{secret: []byte(secret), logger: logger}
}

// Authenticate требует валидный токен и кладёт пользователя в контекст
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			handlers.RespondUnauthorized(w, msgNoToken)
			return
		}

		claims, err := a.parse(parts[1])
		if err != nil {
			a.logger.Warn("%s %s - Authentication failed: %v", r.Method, r.URL.Path, err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				handlers.RespondUnauthorized(w, msgTokenExpired)
				return
			}
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		user := User{ID: claims.UserID, Email: claims.Email, Type: domain.UserType(claims.UserType)}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func (a *Auth) parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}), jwt.WithLeeway(5*time.Second))
	if err != nil {
		return nil, err
	}
	if claims.UserID <= 0 || !domain.UserType(claims.UserType).IsValid() {
		return nil, errors.New("token has no valid user claims")
	}
	return claims, nil
}

// Sign выпускает токен; используется сервисом аутентификации и тестами
func (a *Auth) Sign(u User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   u.ID,
		Email:    u.Email,
		UserType: string(u.Type),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// RequireProvider пропускает только провайдеров
func RequireProvider(next http.Handler) http.Handler {
	return requireType(domain.UserTypeProvider, msgProviderRequired, next)
}

// RequireCustomer пропускает только покупателей
func RequireCustomer(next http.Handler) http.Handler {
	return requireType(domain.UserTypeCustomer, msgCustomerRequired, next)
}

func requireType(t domain.UserType, msg string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := GetUser(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgNoToken)
			return
		}
		if u.Type != t {
			handlers.RespondForbidden(w, msg)
			return
		}
		next.ServeHTTP(w, r)
	})
}
