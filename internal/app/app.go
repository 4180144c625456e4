package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/ecomlite/internal/config"
	"github.com/polkiloo/ecomlite/internal/server/http/handlers"
)

const readHeaderTimeout = 10 * time.Second

// Module wires the shop facade, the HTTP server and its lifecycle.
var Module = fx.Options(
	fx.Provide(
		NewShopFacade,
		func(f *ShopFacade) handlers.ShopFacade { return f },
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

// shopServer owns the listener so a bad address fails startup instead of
// surfacing later from a goroutine.
type shopServer struct {
	server     *http.Server
	cfg        *config.Config
	logger     *slog.Logger
	shutdowner fx.Shutdowner
	listen     func(network, addr string) (net.Listener, error)
	listener   net.Listener
}

func registerLifecycle(p lifecycleParams) {
	s := &shopServer{
		server:     p.Server,
		cfg:        p.Config,
		logger:     p.Logger,
		shutdowner: p.Shutdowner,
		listen:     net.Listen,
	}
	p.Lifecycle.Append(fx.Hook{OnStart: s.start, OnStop: s.stop})
}

func (s *shopServer) start(context.Context) error {
	ln, err := s.listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.server.Addr, err)
	}
	s.listener = ln

	s.logger.Info("starting ecomlite",
		slog.String("addr", ln.Addr().String()),
		slog.String("env", s.cfg.Environment),
	)
	s.reportFeatures()

	go s.serve(ln)
	return nil
}

func (s *shopServer) serve(ln net.Listener) {
	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("http server terminated", slog.String("error", err.Error()))
		_ = s.shutdowner.Shutdown(fx.ExitCode(1))
	}
}

func (s *shopServer) stop(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
	}

	if err := s.server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	s.logger.Info("ecomlite stopped")
	return nil
}

// reportFeatures warns about integrations whose routes will answer with errors.
func (s *shopServer) reportFeatures() {
	if s.cfg.RazorpayKeyID == "" || s.cfg.RazorpayKeySecret == "" {
		s.logger.Warn("payment provider credentials missing, payment routes will fail")
	}
	if s.cfg.MediaBucket == "" {
		s.logger.Warn("media bucket not configured, image uploads will fail")
	}
	if s.cfg.StatusCallbackEnabled {
		s.logger.Warn("unsigned payment status callback enabled")
	}
	if s.cfg.IsProduction() && s.cfg.JWTSecret == config.DefaultJWTSecret {
		s.logger.Warn("default token secret in use")
	}
}
