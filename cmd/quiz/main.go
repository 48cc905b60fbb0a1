package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/hiragana-quiz/internal/config"
	"github.com/aliskhannn/hiragana-quiz/internal/delivery/console"
	"github.com/aliskhannn/hiragana-quiz/internal/logger"
	"github.com/aliskhannn/hiragana-quiz/internal/repository"
	"github.com/aliskhannn/hiragana-quiz/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("using default configuration: %v", err)
		cfg = config.Default()
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A second signal falls back to the default behaviour.
	go func() {
		<-ctx.Done()
		stop()
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Initialize repositories and services.
	kanaRepo, err := repository.NewKanaRepository(rng)
	if err != nil {
		lg.Fatal("failed to build kana table", zap.Error(err))
	}

	generator := service.NewOptionGenerator(kanaRepo.AllCharacters(), rng)
	quizService := service.NewQuizService(kanaRepo, generator, lg)

	handler := console.NewHandler(os.Stdin, os.Stdout, lg, quizService)
	if err := handler.Run(ctx); err != nil {
		lg.Fatal("quiz stopped", zap.Error(err))
	}
}
