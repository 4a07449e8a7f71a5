// Command dogwalk-server runs the dog-walking game's HTTP API: the map
// catalog, the per-map game sessions, the authenticated REST surface, a
// Postgres scoreboard, and (optionally) an internal ticker.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/avito-tech/dogwalk-server/internal/applog"
	"github.com/avito-tech/dogwalk-server/internal/config"
	"github.com/avito-tech/dogwalk-server/internal/httpapi"
	"github.com/avito-tech/dogwalk-server/internal/maploader"
	"github.com/avito-tech/dogwalk-server/internal/registry"
	"github.com/avito-tech/dogwalk-server/internal/scoreboard"
	"github.com/avito-tech/dogwalk-server/internal/snapshot"
	"github.com/avito-tech/dogwalk-server/internal/staticfiles"
	"github.com/avito-tech/dogwalk-server/internal/strand"
	"github.com/avito-tech/dogwalk-server/internal/ticker"
)

// retirementThreshold is the idle duration in seconds after which a
// player is swept from their session (spec §8 scenario 3: "Retirement
// threshold 60 s").
const retirementThreshold = 60.0

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: error loading .env file: %v", err)
	}

	cmd := &cli.Command{
		Name:  "dogwalk-server",
		Usage: "runs the dog-walking game server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config-file", Required: true, Usage: "path to the map catalog JSON file"},
			&cli.StringFlag{Name: "www-root", Required: true, Usage: "directory of static assets to serve"},
			&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "HTTP listen address"},
			&cli.DurationFlag{Name: "tick-period", Usage: "internal tick period; zero disables the internal ticker"},
			&cli.BoolFlag{Name: "randomize-spawn-points", Usage: "randomize player spawn points"},
			&cli.StringFlag{Name: "state-file", Usage: "path for periodic state snapshots; empty disables snapshotting"},
			&cli.DurationFlag{Name: "save-state-period", Value: 5 * time.Minute, Usage: "how often to write a snapshot"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("dogwalk-server: %v", err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.Config{
		ConfigFile:           cmd.String("config-file"),
		WWWRoot:              cmd.String("www-root"),
		TickPeriod:           cmd.Duration("tick-period"),
		RandomizeSpawnPoints: cmd.Bool("randomize-spawn-points"),
		StateFile:            cmd.String("state-file"),
		SaveStatePeriod:      cmd.Duration("save-state-period"),
	}

	catalog, err := maploader.Load(cfg.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading map catalog: %w", err)
	}

	game, err := registry.New(catalog.Maps, registry.Config{
		LootGenerator:       catalog.LootGenerator,
		RandomSpawn:         cfg.RandomizeSpawnPoints,
		RetirementThreshold: retirementThreshold,
		Random:              rand.Float64,
	})
	if err != nil {
		return fmt.Errorf("initializing registry: %w", err)
	}

	st := strand.New()
	defer st.Close()

	if cfg.SnapshotEnabled() {
		var loadErr error
		if err := st.Go(ctx, func() { loadErr = snapshot.Load(cfg.StateFile, game) }); err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		if loadErr != nil {
			return fmt.Errorf("loading snapshot: %w", loadErr)
		}
	}

	// BOOKYPEDIA_DB_URL is required to start (spec §6 Environment), matching
	// the original's GetDbUrlFromEnv, which throws and exits on a missing var.
	dbURL, err := config.DatabaseURLFromEnv()
	if err != nil {
		return fmt.Errorf("resolving database url: %w", err)
	}
	scores, err := scoreboard.Open(ctx, dbURL, 10)
	if err != nil {
		return fmt.Errorf("opening scoreboard: %w", err)
	}
	defer scores.Close()

	server := httpapi.New(game, st, scores, scores, !cfg.TickerEnabled())

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", server)
	mux.Handle("/", staticfiles.Handler(cfg.WWWRoot))

	httpServer := &http.Server{
		Addr:         cmd.String("addr"),
		Handler:      applog.Middleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var tck *ticker.Ticker
	if cfg.TickerEnabled() {
		tck = ticker.New(cfg.TickPeriod, st, func(dt float64) {
			for _, r := range game.Tick(dt) {
				scores.Record(r.Name, r.Score, r.PlayTime)
			}
		})
		go tck.Run(runCtx)
	}

	var snapStop chan struct{}
	if cfg.SnapshotEnabled() {
		snapStop = make(chan struct{})
		go runPeriodicSnapshot(runCtx, st, game, cfg, snapStop)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("dogwalk-server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			return
		}
		serveErr <- nil
	}()

	select {
	case sig := <-stop:
		log.Printf("received signal %v, shutting down", sig)
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	cancel()
	if tck != nil {
		tck.Stop()
	}
	if snapStop != nil {
		close(snapStop)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("http server shutdown error: %v", err)
	}

	if cfg.SnapshotEnabled() {
		if err := saveSnapshot(st, game, cfg.StateFile); err != nil {
			log.Printf("final snapshot save failed: %v", err)
		}
	}

	log.Println("dogwalk-server stopped")
	return nil
}

// runPeriodicSnapshot saves the game state on a fixed period until stop is
// closed or ctx is cancelled (spec §4.6, "periodic background saves").
func runPeriodicSnapshot(ctx context.Context, st *strand.Strand, game *registry.Game, cfg config.Config, stop chan struct{}) {
	t := time.NewTicker(cfg.SaveStatePeriod)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			if err := saveSnapshot(st, game, cfg.StateFile); err != nil {
				log.Printf("periodic snapshot save failed: %v", err)
			}
		case <-stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// saveSnapshot posts the save through the strand so the snapshot it writes
// reflects a single consistent tick rather than a torn mid-tick view.
func saveSnapshot(st *strand.Strand, game *registry.Game, path string) error {
	var saveErr error
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := st.Go(ctx, func() { saveErr = snapshot.Save(path, game) }); err != nil {
		return err
	}
	return saveErr
}
