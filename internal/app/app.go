package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MikhailRaia/shorturl/internal/config"
	"github.com/MikhailRaia/shorturl/internal/handler"
	"github.com/MikhailRaia/shorturl/internal/middleware"
	"github.com/MikhailRaia/shorturl/internal/proto"
	"github.com/MikhailRaia/shorturl/internal/service"
	"github.com/MikhailRaia/shorturl/internal/storage/memory"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

type App struct {
	config     *config.Config
	handler    http.Handler
	grpcServer *grpc.Server
}

// NewApp wires a fresh in-memory store into the HTTP and, if configured, gRPC transports.
func NewApp(cfg *config.Config) *App {
	storage := memory.NewStorage()

	urlService := service.NewURLService(storage)

	httpHandler := handler.NewHandler(urlService)

	app := &App{
		config:  cfg,
		handler: middleware.CORS(httpHandler.RegisterRoutes()),
	}

	if cfg.GRPCAddress != "" {
		app.grpcServer = grpc.NewServer(grpc.UnaryInterceptor(middleware.UnaryLogger))
		proto.RegisterShortURLServiceServer(app.grpcServer, handler.NewShortURLGRPCServer(urlService))
	}

	return app
}

// Run serves until ctx is cancelled or a listener fails, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.config.Addr(),
		Handler:           a.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	var grpcListener net.Listener
	if a.grpcServer != nil {
		lis, err := net.Listen("tcp", a.config.GRPCAddress)
		if err != nil {
			return fmt.Errorf("listen gRPC on %s: %w", a.config.GRPCAddress, err)
		}
		grpcListener = lis
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if grpcListener != nil {
		g.Go(func() error {
			log.Info().Str("addr", grpcListener.Addr().String()).Msg("Starting gRPC server")
			if err := a.grpcServer.Serve(grpcListener); err != nil {
				return fmt.Errorf("grpc server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		if a.grpcServer != nil {
			a.grpcServer.GracefulStop()
		}

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
