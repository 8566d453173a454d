package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"student-manager/auth"
	"student-manager/logger"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	log        *logger.Logger
}

func NewAuthMiddleware(jwtService *auth.JWTService, log *logger.Logger) *AuthMiddleware {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthMiddleware{
		jwtService: jwtService,
		log:        log.Component("auth"),
	}
}

// AuthMiddleware проверяет JWT токен
func (am *AuthMiddleware) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions || IsPublicRoute(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		fields := map[string]interface{}{"method": r.Method, "path": r.URL.Path}

		// Извлекаем токен из заголовка
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			am.log.Warning("❌ No authorization header", fields)
			writeError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		// Проверяем формат заголовка
		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			am.log.Warning("❌ Invalid authorization format", fields)
			writeError(w, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := am.jwtService.ValidateToken(bearerToken[1])
		if err != nil {
			fields["error"] = err.Error()
			am.log.Warning("❌ Invalid token", fields)
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		r = r.WithContext(SetUserClaims(r.Context(), claims))
		am.log.Debug("✅ Authenticated operator", map[string]interface{}{
			"email": claims.Email, "method": r.Method, "path": r.URL.Path,
		})
		next.ServeHTTP(w, r)
	})
}

// Вспомогательные функции для работы с контекстом
type contextKey string

const (
	userClaimsKey contextKey = "userClaims"
	requestIDKey  contextKey = "requestID"
)

// SetUserClaims добавляет claims пользователя в контекст
func SetUserClaims(ctx context.Context, claims *auth.JWTClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

// GetUserClaims извлекает claims пользователя из контекста
func GetUserClaims(ctx context.Context) *auth.JWTClaims {
	if claims, ok := ctx.Value(userClaimsKey).(*auth.JWTClaims); ok {
		return claims
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
