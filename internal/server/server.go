package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Jeomhps/projet-IAC/bola-go/internal/config"
	"github.com/Jeomhps/projet-IAC/bola-go/internal/db"
	"github.com/Jeomhps/projet-IAC/bola-go/internal/handlers/auth"
	"github.com/Jeomhps/projet-IAC/bola-go/internal/handlers/reservations"
	"github.com/Jeomhps/projet-IAC/bola-go/internal/identity"
	"github.com/Jeomhps/projet-IAC/bola-go/internal/middleware"
	"github.com/Jeomhps/projet-IAC/bola-go/internal/reservation"
	"github.com/Jeomhps/projet-IAC/bola-go/internal/seed"
)

// Deps are the collaborators the router is built from. The store is owned by
// the caller and shared by reference with every request.
type Deps struct {
	Store       reservation.Store
	Resolver    identity.Resolver
	Tokens      *identity.JWT
	Credentials *identity.Credentials
	Log         *zap.Logger
}

// NewRouter registers every route on a fresh gin engine.
func NewRouter(d Deps) *gin.Engine {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	// Match on the raw path so an encoded slash stays inside one :userId
	// segment; the param is handed to handlers decoded.
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())

	resH := reservations.NewHandler(d.Store, d.Resolver, log)
	authH := auth.New(d.Credentials, d.Tokens, d.Resolver)

	// Public
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/auth/login", authH.Login)
	r.GET("/auth/me", authH.Me)

	// Reservations: /vulnerable/users/:userId and /secure/users/:userId
	resH.Register(r)

	return r
}

// NewResolver picks the identity resolver for the configured mode.
func NewResolver(cfg config.Config, tokens *identity.JWT) identity.Resolver {
	if cfg.IdentityMode == config.IdentityJWT {
		return tokens
	}
	return identity.NewHeader(cfg.IdentityHeader)
}

// OpenStore returns the configured backend. The returned close func is never nil.
func OpenStore(ctx context.Context, cfg config.Config) (reservation.Store, func() error, error) {
	switch cfg.StoreBackend {
	case config.BackendMySQL:
		d, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, func() error { return nil }, errors.Trace(err)
		}
		return d, d.Close, nil
	default:
		return reservation.NewMemory(), func() error { return nil }, nil
	}
}

// Build loads seed data into a fresh store and assembles the router deps.
func Build(ctx context.Context, cfg config.Config, log *zap.Logger) (Deps, func() error, error) {
	st, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		return Deps{}, closeStore, errors.Trace(err)
	}

	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return Deps{}, closeStore, errors.Trace(err)
	}
	if err := seed.Apply(ctx, st, data); err != nil {
		return Deps{}, closeStore, errors.Trace(err)
	}

	passwords := make(map[string]string, len(data.Users))
	for _, u := range data.Users {
		passwords[u.ID] = u.Password
	}
	creds, err := identity.NewCredentials(passwords, 0)
	if err != nil {
		return Deps{}, closeStore, errors.Trace(err)
	}

	tokens := identity.NewJWT(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	return Deps{
		Store:       st,
		Resolver:    NewResolver(cfg, tokens),
		Tokens:      tokens,
		Credentials: creds,
		Log:         log,
	}, closeStore, nil
}

// Run serves h on addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, addr string, h http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.Annotate(err, "listen")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("shutting down")
		return errors.Annotate(srv.Shutdown(shutdownCtx), "shutdown")
	}
}
