package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/cache"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/config"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/database"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/repository"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/service"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/storage"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/transport/rest"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/transport/ws"
	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	ctx := context.Background()

	// MongoDB connection. A failed connect is logged and the process
	// keeps running: every request that touches the store then fails
	// with an internal error until a restart. There is no retry.
	gw := database.NewGateway(cfg.MongoURI, cfg.MongoDB)
	if err := gw.Connect(ctx); err != nil {
		log.Printf("Error connecting to MongoDB: %v", err)
	}
	defer gw.Disconnect(ctx)

	// Redis mirror for the leaderboard. Optional: without it all
	// leaderboard reads go straight to Mongo.
	var lbCache cache.LeaderboardCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Printf("Warning: Redis unavailable, leaderboard cache disabled: %v", err)
		} else {
			log.Println("Connected to Redis")
			lbCache = cache.NewLeaderboardCache(rdb)
		}
	}

	uploadStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	wsHub := ws.NewHub()

	// Repositories
	userRepo := repository.NewUserRepo(gw)
	quizRepo := repository.NewQuestionRepo(gw, "quiz")
	quiz2Repo := repository.NewQuestionRepo(gw, "quiz2")
	lbRepo := repository.NewLeaderboardRepo(gw)

	// Services
	authSvc := service.NewAuthService(cfg.JWTSecret)
	userSvc := service.NewUserService(userRepo, authSvc)
	lbSvc := service.NewLeaderboardService(lbRepo, lbCache)
	lbSvc.SetBroadcaster(wsHub)

	scorer := service.NewPositionalScorer()
	quizSvc := service.NewQuizService(quizRepo, lbSvc, scorer)
	quiz2Svc := service.NewQuizService(quiz2Repo, lbSvc, scorer)

	container := &rest.Container{
		AuthService:        authSvc,
		UserService:        userSvc,
		QuizService:        quizSvc,
		Quiz2Service:       quiz2Svc,
		LeaderboardService: lbSvc,
		UploadStore:        uploadStore,
		WSHub:              wsHub,
	}

	router := rest.NewRouter(container)
	loggedRouter := handlers.LoggingHandler(os.Stdout, router)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: loggedRouter,
	}

	go func() {
		log.Printf("Server is running on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
