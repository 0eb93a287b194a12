package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tigredonorte/bingo-sub004/cardregistry"
	"github.com/tigredonorte/bingo-sub004/cardservice"
	"github.com/tigredonorte/bingo-sub004/server"
	"github.com/tigredonorte/bingo-sub004/session"
	"github.com/tigredonorte/bingo-sub004/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	seed := time.Now().UnixNano()
	if raw := os.Getenv("RNG_SEED"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatal().Err(err).Str("value", raw).Msg("invalid RNG_SEED")
		}
		seed = parsed
	}

	var cardStore store.CardStore
	if dsn := os.Getenv("BINGO_DB"); dsn != "" {
		sqlite, err := store.NewSQLiteStore(dsn)
		if err != nil {
			log.Fatal().Err(err).Str("dsn", dsn).Msg("opening card database")
		}
		defer sqlite.Close()
		cardStore = sqlite
		log.Info().Str("dsn", dsn).Msg("using sqlite card store")
	} else {
		cardStore = store.NewMemoryStore()
		log.Info().Msg("using in-memory card store")
	}

	cards := cardservice.New(seed, cardregistry.New())
	sessions := session.NewManager(getEnv("SESSION_SECRET", "dev-only-secret"), 0)

	srv := server.New(cards, cardStore, sessions)
	port := getEnv("PORT", "8080")
	log.Info().Str("port", port).Msg("starting bingod")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
