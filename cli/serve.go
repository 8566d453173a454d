package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"student-manager/auth"
	"student-manager/handlers"

	"github.com/spf13/cobra"
)

func NewServeCommand(opts *RootOptions) *cobra.Command {
	var origins []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(opts)
			if err != nil {
				return err
			}
			log := e.log.Component("server")

			if e.cfg.OperatorPasswordHash == "" {
				log.Warning("⚠️ OPERATOR_PASSWORD_HASH is empty, nobody can log in", nil)
			}

			jwtService := auth.NewJWTService(e.cfg.JWTSecret, e.cfg.JWTExpiry)
			router := handlers.NewRouter(handlers.RouterDeps{
				Service:       e.svc,
				JWTService:    jwtService,
				Authenticator: auth.NewAuthenticator(e.cfg.OperatorEmail, e.cfg.OperatorPasswordHash),
				Log:           e.log,
				Origins:       origins,
			})

			if err := e.svc.Load(cmd.Context()); err != nil {
				// API still starts, GET /api/students retries the load
				log.Error("❌ Initial load failed", err, nil)
			}

			srv := &http.Server{
				Addr:              ":" + e.cfg.ServerPort,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("🚀 Server started", map[string]interface{}{
					"addr": srv.Addr, "driver": e.cfg.DBDriver, "jwt_expiry_hours": e.cfg.JWTExpiry,
				})
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringSliceVar(&origins, "origin", nil, "allowed CORS origin (repeatable, default any)")
	return cmd
}
