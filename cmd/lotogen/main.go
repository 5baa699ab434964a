package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dmfelipe/lotogen/internal/config"
	"github.com/dmfelipe/lotogen/internal/gen"
	"github.com/dmfelipe/lotogen/internal/output"
	"github.com/dmfelipe/lotogen/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the run configuration file")
	flag.Parse()

	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	req := gen.Request{
		TargetGames:  cfg.TargetGames,
		InitialGames: cfg.Games(),
		Seed:         *cfg.Seed,
		Rule:         cfg.Rule(),
		MaxAttempts:  cfg.MaxAttempts,
	}
	res, err := gen.New(log.Logger).Run(ctx, req)
	if err != nil {
		return err
	}

	if err := output.WriteGamesCSV(cfg.GamesCSV, res.Games); err != nil {
		return err
	}
	log.Info().Str("path", cfg.GamesCSV).Int("games", len(res.Games)).Msg("games written")

	if cfg.ReportXLSX != "" {
		if err := output.ExportRunXLSX(cfg.ReportXLSX, req, res); err != nil {
			return err
		}
		log.Info().Str("path", cfg.ReportXLSX).Msg("report written")
	}

	if cfg.DBPath != "" {
		if err := persist(cfg, req, res); err != nil {
			return err
		}
	}
	return nil
}

func persist(cfg *config.Config, req gen.Request, res *gen.Result) (err error) {
	db, err := store.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := db.Migrate(); err != nil {
		return err
	}

	run := &store.Run{
		Seed:         req.Seed,
		TargetGames:  req.TargetGames,
		MinDesired:   req.Rule.MinDesired,
		MaxNumber:    req.Rule.MaxNumber,
		Seeded:       res.Summary.Seeded,
		Accepted:     res.Summary.Accepted,
		Attempts:     res.Summary.Attempts,
		DupGame:      res.Summary.DupGame,
		OutOfRange:   res.Summary.OutOfRange,
		TripletClash: res.Summary.TripletClash,
		ElapsedMs:    res.Summary.Elapsed.Milliseconds(),
	}
	if err := db.SaveRun(run); err != nil {
		return err
	}
	if err := db.SaveGames(run.ID, res.Games); err != nil {
		return err
	}
	if err := db.SaveRankSet(run.ID, store.RankSetGames, res.GameRanks.Members()); err != nil {
		return err
	}
	if err := db.SaveRankSet(run.ID, store.RankSetTriplets, res.TripletRanks.Members()); err != nil {
		return err
	}
	log.Info().Str("run_id", run.ID).Str("path", cfg.DBPath).Msg("run persisted")
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
