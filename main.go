package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nstehr/vimy/vimy-guard/agent"
	"github.com/nstehr/vimy/vimy-guard/ipc"
	"github.com/nstehr/vimy/vimy-guard/rules"
)

const banner = `
██╗   ██╗██╗███╗   ███╗██╗   ██╗
██║   ██║██║████╗ ████║╚██╗ ██╔╝
██║   ██║██║██╔████╔██║ ╚████╔╝
╚██╗ ██╔╝██║██║╚██╔╝██║  ╚██╔╝
 ╚████╔╝ ██║██║ ╚═╝ ██║   ██║
  ╚═══╝  ╚═╝╚═╝     ╚═╝   ╚═╝

Bodyguard Defense Sidecar`

func main() {
	socketPath := flag.String("socket", "/tmp/vimy-guard.sock", "unix socket the game mod connects to")
	wsAddr := flag.String("ws", "", "optional websocket listen address, e.g. :8089")
	tuningPath := flag.String("tuning", "", "YAML tuning file; defaults are used when empty")
	reloadTicks := flag.Int("reload-ticks", 500, "game ticks between tuning file reloads")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	fmt.Println(banner)
	slog.Info("starting vimy-guard")

	if err := run(*socketPath, *wsAddr, *tuningPath, *reloadTicks); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(socketPath, wsAddr, tuningPath string, reloadTicks int) error {
	tuning := rules.DefaultTuning()
	if tuningPath != "" {
		t, err := rules.LoadTuning(tuningPath)
		if err != nil {
			return err
		}
		tuning = t
	}

	engine, err := rules.NewEngine(rules.CompileTuning(tuning))
	if err != nil {
		return fmt.Errorf("compile rules: %w", err)
	}
	slog.Info("sizing rules loaded", "tuning", tuning.Name, "rules", engine.RuleNames())
	tuner := agent.NewTuner(engine, tuningPath, reloadTicks, tuning)

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(socketPath); err != nil {
		return fmt.Errorf("clean up socket %s: %w", socketPath, err)
	}
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", socketPath, err)
	}
	defer os.Remove(socketPath)
	slog.Info("listening on domain socket", "path", socketPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serve := func(ctx context.Context, conn net.Conn) {
		c := ipc.NewConnection(conn)
		a := agent.New(c, engine, tuner)
		c.Handle(ipc.TypeHello, a.HandleHello)
		c.Handle(ipc.TypeTick, a.HandleTick)
		c.ReadLoop(ctx)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return tuner.Start(ctx) })

	g.Go(func() error {
		<-ctx.Done()
		return listener.Close()
	})
	g.Go(func() error {
		for {
			conn, err := listener.Accept()
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				if errors.Is(err, net.ErrClosed) {
					return err
				}
				slog.Error("failed to accept connection", "error", err)
				continue
			}
			slog.Info("new connection accepted")
			go serve(ctx, conn)
		}
	})

	if wsAddr != "" {
		srv := &http.Server{
			Addr:              wsAddr,
			Handler:           ipc.NewWebSocketHandler(ctx, serve),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			slog.Info("listening for websocket connections", "addr", wsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("websocket server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	err = g.Wait()
	slog.Info("shutting down")
	return err
}
