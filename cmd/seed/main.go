package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/config"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/database"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/model"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/repository"
	"github.com/joho/godotenv"
)

// Seeds both quiz collections with a starter question set so a fresh
// deployment has something to serve.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	gw := database.NewGateway(cfg.MongoURI, cfg.MongoDB)
	if err := gw.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer gw.Disconnect(ctx)

	quizQuestions := []model.Question{
		{
			"question":      "Which year was the first Counter-Strike released?",
			"options":       []string{"1998", "1999", "2000", "2001"},
			"correctAnswer": "1999",
		},
		{
			"question":      "How many players are on one side in a classic CS round?",
			"options":       []string{"4", "5", "6", "10"},
			"correctAnswer": "5",
		},
		{
			"question":      "Which game popularized the battle royale genre?",
			"options":       []string{"Fortnite", "PUBG", "Apex Legends", "H1Z1"},
			"correctAnswer": "PUBG",
		},
	}

	quiz2Questions := []model.Question{
		{
			"question":      "Which company develops League of Legends?",
			"options":       []string{"Valve", "Blizzard", "Riot Games", "Epic Games"},
			"correctAnswer": "Riot Games",
		},
		{
			"question":      "What is the maximum level in classic World of Warcraft?",
			"options":       []string{"50", "60", "70", "80"},
			"correctAnswer": "60",
		},
	}

	if err := repository.NewQuestionRepo(gw, "quiz").AddMany(ctx, quizQuestions); err != nil {
		log.Fatalf("Failed to seed quiz: %v", err)
	}
	if err := repository.NewQuestionRepo(gw, "quiz2").AddMany(ctx, quiz2Questions); err != nil {
		log.Fatalf("Failed to seed quiz2: %v", err)
	}

	fmt.Printf("Seeded %d quiz and %d quiz2 questions\n", len(quizQuestions), len(quiz2Questions))
}
