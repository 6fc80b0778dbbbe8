package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/avolkov/mafia/internal/chat"
	"github.com/avolkov/mafia/internal/config"
	"github.com/avolkov/mafia/internal/game"
	"github.com/avolkov/mafia/internal/locale"
	"github.com/avolkov/mafia/internal/login"
	"github.com/avolkov/mafia/internal/socket"
)

// VERSION is populated via build flags when packaging binaries.
var VERSION = "SELFBUILD"

func main() {
	app := cli.NewApp()
	app.Name = "mafiaserver"
	app.Usage = "line-oriented TCP server for the Mafia party game"
	app.Version = VERSION
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Value: "config/mafiaserver.yaml",
			Usage: "path to the YAML config",
		},
		cli.StringFlag{
			Name:  "listen,l",
			Usage: "bind address, overrides the config",
		},
		cli.IntFlag{
			Name:  "port,p",
			Usage: "listen port, overrides the config",
		},
		cli.StringFlag{
			Name:  "locale",
			Usage: "string table to use: en or ru",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "slog level: debug, info, warn or error",
		},
	}
	app.Action = serve

	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))

	cfg, err := config.LoadServer(c.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if addr := c.String("listen"); addr != "" {
		cfg.BindAddress = addr
	}
	if port := c.Int("port"); port != 0 {
		cfg.Port = port
	}
	if loc := c.String("locale"); loc != "" {
		cfg.Locale = loc
	}

	loc, err := locale.ForName(cfg.Locale)
	if err != nil {
		return err
	}
	slog.Info("mafia server starting", "addr", cfg.Addr(), "locale", cfg.Locale)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	return run(ctx, cfg, loc)
}

// run wires the pipeline bottom-up handler-wise (game first, socket
// last) and supervises the four service loops. Any loop returning an
// error is fatal; cancellation drains them all with nil.
func run(ctx context.Context, cfg config.Server, loc locale.Table) error {
	gameService := game.New(loc, game.Config{
		MinPlayers:    cfg.Game.MinPlayers,
		DayDuration:   cfg.Game.DayDuration(),
		NightDuration: cfg.Game.NightDuration(),
	}, cfg.QueueSize)
	chatService := chat.New(gameService.Handler(), loc, cfg.QueueSize)
	loginService := login.New(chatService.UserHandler(), loc, cfg.QueueSize)
	socketService := socket.New(loginService.SocketHandler(), socket.Config{
		Addr:         cfg.Addr(),
		QueueSize:    cfg.QueueSize,
		WriteTimeout: cfg.WriteTimeout(),
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := socketService.Run(gctx); err != nil {
			return fmt.Errorf("socket service: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := loginService.Run(gctx); err != nil {
			return fmt.Errorf("login service: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := chatService.Run(gctx); err != nil {
			return fmt.Errorf("chat service: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := gameService.Run(gctx); err != nil {
			return fmt.Errorf("game service: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
