package handlers

import (
	"net/http"
	"time"

	"student-manager/auth"
	"student-manager/logger"
	"student-manager/middleware"
	"student-manager/service"

	"github.com/gorilla/mux"
)

// RouterDeps is everything the HTTP surface needs.
type RouterDeps struct {
	Service       *service.StudentService
	JWTService    *auth.JWTService
	Authenticator *auth.Authenticator
	Log           *logger.Logger
	Origins       []string
}

func NewRouter(deps RouterDeps) http.Handler {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	authHandler := NewAuthHandler(deps.Authenticator, deps.JWTService, log)
	studentHandler := NewStudentHandler(deps.Service, log)
	authMiddleware := middleware.NewAuthMiddleware(deps.JWTService, log)

	r := mux.NewRouter()
	r.Use(middleware.Logging(log))
	r.Use(authMiddleware.AuthMiddleware)

	// Публичные маршруты
	r.HandleFunc("/health", healthHandler(log)).Methods("GET")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/courses", studentHandler.GetCourses).Methods("GET")

	// Защищенные маршруты API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	api.HandleFunc("/students", studentHandler.GetStudents).Methods("GET")
	api.HandleFunc("/students", studentHandler.CreateStudent).Methods("POST")
	api.HandleFunc("/students/search", studentHandler.SearchStudents).Methods("GET")
	api.HandleFunc("/students/{id:[0-9]+}", studentHandler.UpdateStudent).Methods("PUT", "PATCH")
	api.HandleFunc("/students/{id:[0-9]+}", studentHandler.DeleteStudent).Methods("DELETE")

	// preflight OPTIONS отвечает CORS обертка
	return middleware.Recovery(log)(middleware.CORS(deps.Origins...)(r))
}

func healthHandler(log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log, http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   "student-manager",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
