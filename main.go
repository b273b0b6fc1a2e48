package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkurecka/supadata-mcp/config"
	"github.com/mkurecka/supadata-mcp/server"
	"github.com/mkurecka/supadata-mcp/supadata"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var version = "1.0.0"

type CLI struct {
	Config   string           `help:"Path to a supadata-config.json checked before the default locations." type:"path" placeholder:"PATH"`
	LogLevel string           `help:"Log level." default:"info" enum:"debug,info,warn,error" env:"SUPADATA_LOG_LEVEL"`
	Version  kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name(server.Name),
		kong.Description("MCP server exposing the Supadata transcript API as the get_transcript tool."),
		kong.Vars{"version": version},
	)

	setupLogging(cli.LogLevel)

	// Stdout carries the protocol; everything diagnostic goes to stderr.
	cfg := config.Load(cli.Config)

	var client server.TranscriptClient
	if cfg != nil {
		c := supadata.NewClient(cfg.APIKey, cfg.BaseURL, http.Client{})
		client = &c

		log.Info().
			Str("source", cfg.Source).
			Str("base_url", c.BaseURL()).
			Msg("Supadata client configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(client, version)
	if err := srv.Serve(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}
