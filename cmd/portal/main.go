package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/foundation-portal/internal/cache"
	"github.com/pribylovaa/foundation-portal/internal/config"
	portalhttp "github.com/pribylovaa/foundation-portal/internal/http"
	"github.com/pribylovaa/foundation-portal/internal/http/handlers"
	"github.com/pribylovaa/foundation-portal/internal/metrics"
	"github.com/pribylovaa/foundation-portal/internal/service"
	"github.com/pribylovaa/foundation-portal/internal/session"
	"github.com/pribylovaa/foundation-portal/internal/slider"
	"github.com/pribylovaa/foundation-portal/internal/storage/minio"
	"github.com/pribylovaa/foundation-portal/internal/storage/postgres"
	"github.com/pribylovaa/foundation-portal/internal/views"
	logctx "github.com/pribylovaa/foundation-portal/pkg/log"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// sessionInitRetry — пауза между попытками инициализации сессий, пока зависимости недоступны.
const sessionInitRetry = time.Second

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting portal", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()
	rootCtx = logctx.Into(rootCtx, log)

	st, err := postgres.New(rootCtx, cfg.DB.URL)
	if err != nil {
		log.Error("storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer st.Close()

	objects, err := minio.New(rootCtx, cfg.S3)
	if err != nil {
		log.Error("objects_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	revoked, err := cache.NewRedisCache(rootCtx, cfg.Redis.URL, cfg.Redis.Prefix)
	if err != nil {
		log.Error("cache_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := revoked.Close(); cerr != nil {
			log.Warn("cache_close_failed", slog.String("err", cerr.Error()))
		}
	}()

	log.Info("dependencies_initialized")

	m := metrics.New(prometheus.DefaultRegisterer)

	svc := service.New(st, objects, cfg)
	svc.SetRevokedStore(revoked)
	svc.SetMetrics(m)

	provider := session.NewCookieProvider(svc, cfg.Session, cfg.Auth.SessionTTL,
		st.Ping,
		func(ctx context.Context) error {
			_, err := revoked.IsRevoked(ctx, "readiness")
			return err
		},
	)
	defer provider.Dispose()

	var ready int32 // 0 — not ready; 1 — ready

	// Пока сессии не готовы, гейт отдаёт заглушку, а /healthz — 503.
	provider.Subscribe(func() { atomic.StoreInt32(&ready, 1) })
	go initSessions(rootCtx, provider)

	hub := slider.NewHub()
	defer hub.Close()

	h := handlers.New(svc, provider, views.MustNew(), hub, m, cfg.Site)

	appHandler := portalhttp.NewRouter(h, provider, portalhttp.Options{
		Logger:  log,
		Timeout: cfg.Timeouts.Service,
		Metrics: m,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", appHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return rootCtx },
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// SSE-потоки слайдера завершаются через отмену rootCtx (BaseContext).
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

// initSessions повторяет Init, пока зависимости не ответят или не придёт сигнал остановки.
func initSessions(ctx context.Context, p *session.CookieProvider) {
	for {
		err := p.Init(ctx)
		if err == nil {
			return
		}

		logctx.From(ctx).Warn("session_init_failed", slog.String("err", err.Error()))

		select {
		case <-ctx.Done():
			return
		case <-time.After(sessionInitRetry):
		}
	}
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
