package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"deepdive/internal/service"
	"deepdive/internal/transport/rest/handler"
	"deepdive/internal/transport/rest/middleware"
	"deepdive/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	SurveyService    *service.SurveyService
	ResponseService  *service.ResponseService
	InterviewService *service.InterviewService
	WSHub            *ws.Hub
	WSHandler        *ws.Handler
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	surveyHandler := handler.NewSurveyHandler(c.SurveyService)
	responseHandler := handler.NewResponseHandler(c.ResponseService, c.InterviewService)
	chatHandler := handler.NewChatHandler(c.InterviewService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	v1 := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/admins", authHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/admins/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Respondent routes (no auth: respondents are anonymous)
	v1.HandleFunc("/surveys/{surveyId}", surveyHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/surveys/{surveyId}/responses", responseHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/surveys/{surveyId}/responses/{responseId}/chat", chatHandler.SendMessage).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"Server is running!"}`))
	}).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/surveys", surveyHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/surveys", surveyHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}", surveyHandler.Delete).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}/responses", responseHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}/responses/{responseId}", responseHandler.Get).Methods("GET", "OPTIONS")

	// WebSocket route (token in query param)
	adminRoutes.HandleFunc("/ws/surveys/{surveyId}/watch", c.WSHandler.WatchSurvey).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
