package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"gend/internal/common/fsutil"
	"gend/internal/config"
	"gend/internal/httpapi"
	"gend/internal/manager"
)

type options struct {
	addr        string
	configPath  string
	modelPath   string
	ctxSize     int
	threads     int
	sessionTTL  time.Duration
	reapEvery   time.Duration
	logLevel    string
	corsOrigins string
	debug       bool
}

func main() {
	// A .env file may carry model and port settings for local runs.
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envAddr resolves the listen address from GEND_ADDR or, like the original
// service, a bare PORT variable.
func envAddr() string {
	if v := os.Getenv("GEND_ADDR"); v != "" {
		return v
	}
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ""
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "gend",
		Short:         "Progressive text-generation daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	f := root.Flags()
	f.StringVar(&opts.addr, "addr", envAddr(), "HTTP listen address, e.g. :8080 (defaults GEND_ADDR or PORT)")
	f.StringVar(&opts.configPath, "config", os.Getenv("GEND_CONFIG"), "Optional config file (.yaml/.json/.toml)")
	f.StringVar(&opts.modelPath, "model", os.Getenv("GEND_MODEL_PATH"), "Path to the *.gguf model file (defaults GEND_MODEL_PATH)")
	f.IntVar(&opts.ctxSize, "ctx-size", 0, "Model context size (0 = runtime default)")
	f.IntVar(&opts.threads, "threads", 0, "Inference threads (0 = runtime default)")
	f.DurationVar(&opts.sessionTTL, "session-ttl", 0, "Session retention window (default 30m)")
	f.DurationVar(&opts.reapEvery, "reap-interval", 0, "Session reaper cycle period (default 10m)")
	f.StringVar(&opts.logLevel, "log-level", os.Getenv("GEND_LOG_LEVEL"), "Log level: debug|info|warn|error")
	f.StringVar(&opts.corsOrigins, "cors-origins", envOr("GEND_CORS_ORIGINS", "*"), "Comma-separated allowed CORS origins; empty disables CORS")
	f.BoolVar(&opts.debug, "debug", os.Getenv("GEND_DEBUG") == "1", "Console output and debug-level logging")
	return root
}

func run(opts *options) error {
	// An optional config file fills the gaps flags and env left unset.
	if opts.configPath != "" {
		fileCfg, err := config.Load(opts.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		applyFileConfig(opts, fileCfg)
	}
	if opts.addr == "" {
		opts.addr = ":8080"
	}

	logger := newLogger(opts)
	httpapi.SetLogger(logger)
	if origins := splitCSV(opts.corsOrigins); len(origins) > 0 {
		httpapi.SetCORSOptions(true, origins,
			[]string{http.MethodGet, http.MethodPost, http.MethodOptions},
			[]string{"Accept", "Content-Type", "X-Log-Level"})
	}

	modelPath, err := fsutil.ExpandHome(opts.modelPath)
	if err != nil {
		return fmt.Errorf("model path: %w", err)
	}
	if modelPath != "" && !fsutil.PathExists(modelPath) {
		logger.Warn().Str("model_path", modelPath).Msg("model file not found; generations will fail until it appears")
	}

	mgr := manager.NewWithConfig(manager.ManagerConfig{
		ModelPath:    modelPath,
		CtxSize:      opts.ctxSize,
		Threads:      opts.threads,
		SessionTTL:   opts.sessionTTL,
		ReapInterval: opts.reapEvery,
		Logger:       &logger,
	})
	defer mgr.Close()

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	srv := &http.Server{Addr: opts.addr, Handler: httpapi.NewMux(mgr)}
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", opts.addr).Str("model_path", modelPath).Msg("gend listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	return nil
}

// applyFileConfig copies file values into options the caller did not set.
func applyFileConfig(opts *options, cfg config.Config) {
	if opts.addr == "" {
		opts.addr = cfg.Addr
	}
	if opts.modelPath == "" {
		opts.modelPath = cfg.ModelPath
	}
	if opts.ctxSize == 0 {
		opts.ctxSize = cfg.CtxSize
	}
	if opts.threads == 0 {
		opts.threads = cfg.Threads
	}
	if opts.sessionTTL == 0 && cfg.SessionTTLSeconds > 0 {
		opts.sessionTTL = time.Duration(cfg.SessionTTLSeconds) * time.Second
	}
	if opts.reapEvery == 0 && cfg.ReapIntervalSeconds > 0 {
		opts.reapEvery = time.Duration(cfg.ReapIntervalSeconds) * time.Second
	}
	if opts.logLevel == "" {
		opts.logLevel = cfg.LogLevel
	}
	if opts.corsOrigins == "*" && cfg.CORSEnabled && len(cfg.CORSOrigins) > 0 {
		opts.corsOrigins = joinCSV(cfg.CORSOrigins)
	}
}

func newLogger(opts *options) zerolog.Logger {
	level := zerolog.InfoLevel
	if l, err := zerolog.ParseLevel(opts.logLevel); err == nil && l != zerolog.NoLevel {
		level = l
	}
	var w io.Writer = os.Stderr
	if opts.debug {
		level = zerolog.DebugLevel
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
