package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"

	"github.com/MikhailRaia/shorturl/internal/app"
	"github.com/MikhailRaia/shorturl/internal/config"
	"github.com/MikhailRaia/shorturl/internal/logger"
	"github.com/rs/zerolog/log"
)

var memprofile = flag.String("memprofile", "", "write memory profile to `file`")

func writeHeapProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to create memory profile")
		return
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Error().Err(err).Msg("Failed to write memory profile")
	}
}

func main() {
	cfg := config.NewConfig()

	logger.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.NewApp(cfg)
	err := application.Run(ctx)

	if *memprofile != "" {
		writeHeapProfile(*memprofile)
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Error running application")
	}
}
