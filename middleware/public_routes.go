package middleware

import (
	"strings"
)

// IsPublicRoute проверяет, является ли маршрут публичным
func IsPublicRoute(path string) bool {
	publicRoutes := []string{
		"/health",
		"/api/courses",
	}

	for _, route := range publicRoutes {
		if path == route {
			return true
		}
	}

	// Для подпутей
	return strings.HasPrefix(path, "/api/auth/")
}
