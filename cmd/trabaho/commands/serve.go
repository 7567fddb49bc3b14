package commands

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"trabaho-board/internal/catalog"
	"trabaho-board/internal/events"
	"trabaho-board/internal/httpapi"
	"trabaho-board/internal/logger"
	"trabaho-board/internal/render"
	"trabaho-board/internal/scheduler"
)

// heartbeatInterval keeps idle SSE connections open through proxies.
const heartbeatInterval = 25 * time.Second

// ServeCmd starts the board server.
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the catalogue and serve the board",
	Long: `Serve the job board. The catalogue loads in the background; until it
settles the board shows its loading banner.`,
	RunE: runServe,
}

var (
	serveAddr    string
	serveLogJSON bool
)

func init() {
	ServeCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides app.addr)")
	ServeCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Emit JSON logs (overrides app.log_json)")
}

func runServe(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	cfg := env.Cfg
	if serveAddr != "" {
		cfg.App.Addr = serveAddr
	}
	if err := logger.Initialize(cfg.App.LogJSON || serveLogJSON); err != nil {
		return errors.Wrap(err, "initialize logger")
	}
	for _, w := range env.Warnings {
		logger.Warnw("config warning", "path", env.CfgPath, "warning", w)
	}

	sources, err := catalog.SourcesFromConfig(cfg, env.feedDir())
	if err != nil {
		return err
	}

	rnd, err := render.New()
	if err != nil {
		return err
	}

	var cfgVal atomic.Value // stores config.Config
	cfgVal.Store(cfg)

	hub := events.NewHub()
	st := catalog.NewStore()
	deps := httpapi.Deps{
		Store:    st,
		Hub:      hub,
		Renderer: rnd,
		CfgVal:   &cfgVal,
	}
	if cfg.Limits.RequestsPerSecond > 0 {
		deps.Limiter = httpapi.NewKeyLimiter(cfg.Limits.RequestsPerSecond, cfg.Limits.Burst)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := catalog.Loader{
		Sources: sources,
		Strict:  cfg.Board.Strict,
		Timeout: cfg.SourceTimeout(),
		Events:  hub,
	}
	go loader.Load(ctx, st)
	go scheduler.Every(ctx, heartbeatInterval, "sse-heartbeat", func(context.Context) error {
		hub.Heartbeat(events.MakeEvent("", events.TypePing, 1, nil))
		return nil
	})

	logger.Infow("starting board",
		"config", env.CfgPath,
		logger.FieldCount, len(sources),
	)
	return httpapi.Serve(ctx, cfg.App.Addr, httpapi.NewRouter(deps))
}
