package rest

import (
	"net/http"
	"os"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/service"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/storage"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/transport/rest/handler"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/transport/rest/middleware"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/transport/ws"
	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService        *service.AuthService
	UserService        *service.UserService
	QuizService        *service.QuizService
	Quiz2Service       *service.QuizService
	LeaderboardService *service.LeaderboardService
	UploadStore        *storage.DiskStore
	WSHub              *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	userHandler := handler.NewUserHandler(c.UserService)
	quizHandler := handler.NewQuizHandler(c.QuizService, "Questions added successfully")
	quiz2Handler := handler.NewQuizHandler(c.Quiz2Service, "Questions added successfully to quiz2")
	lbHandler := handler.NewLeaderboardHandler(c.LeaderboardService)
	uploadHandler := handler.NewUploadHandler(c.UploadStore)
	wsHandler := ws.NewHandler(c.WSHub)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware)

	// Public auth routes
	r.HandleFunc("/register", userHandler.Register).Methods("POST", "OPTIONS")
	r.HandleFunc("/login", userHandler.Login).Methods("POST", "OPTIONS")

	// Authenticated profile routes. Registered before the open profile
	// routes: the open PUT below shares this path and mux matches in
	// registration order, so /user/profile always hits the token gate
	// first, exactly as upstream registered its middleware.
	authRoutes := r.NewRoute().Subrouter()
	authRoutes.Use(authMW.RequireUser)
	authRoutes.HandleFunc("/user/profile", userHandler.GetProfile).Methods("GET", "OPTIONS")
	authRoutes.HandleFunc("/user/profile", userHandler.UpdateProfile).Methods("PUT", "OPTIONS")

	// Open profile routes. The ungated PUT is a deliberate behavioral
	// fact of the service, not a bug to fix here; see DESIGN.md.
	r.HandleFunc("/user/profile/{email}", userHandler.GetProfileByEmail).Methods("GET", "OPTIONS")
	r.HandleFunc("/user/profile", userHandler.UpdateProfileByUsername).Methods("PUT", "OPTIONS")

	// Quiz instance routes
	r.HandleFunc("/quiz/questions/add-multiple", quizHandler.AddQuestions).Methods("POST", "OPTIONS")
	r.HandleFunc("/quiz/questions", quizHandler.ListQuestions).Methods("GET", "OPTIONS")
	r.HandleFunc("/quiz/submit", quizHandler.Submit).Methods("POST", "OPTIONS")
	r.HandleFunc("/quiz2/questions/add-multiple", quiz2Handler.AddQuestions).Methods("POST", "OPTIONS")
	r.HandleFunc("/quiz2/questions", quiz2Handler.ListQuestions).Methods("GET", "OPTIONS")
	r.HandleFunc("/quiz2/submit", quiz2Handler.Submit).Methods("POST", "OPTIONS")

	// Leaderboard: one shared board behind both paths
	r.HandleFunc("/leaderboard", lbHandler.Get).Methods("GET", "OPTIONS")
	r.HandleFunc("/quiz2/leaderboard", lbHandler.Get).Methods("GET", "OPTIONS")

	// Live leaderboard feed
	r.HandleFunc("/ws/leaderboard", wsHandler.Leaderboard).Methods("GET")

	// Uploaded profile pictures: accept new files, serve existing ones
	r.HandleFunc("/upload", uploadHandler.Upload).Methods("POST", "OPTIONS")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(c.UploadStore.Dir()))))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

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
