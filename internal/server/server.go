package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/railzwaylabs/envelope/internal/catalog/domain"
	"github.com/railzwaylabs/envelope/internal/cache"
	"github.com/railzwaylabs/envelope/internal/config"
	"github.com/railzwaylabs/envelope/internal/observability"
	"github.com/railzwaylabs/envelope/pkg/response"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) {
		s.RegisterRoutes()
	}),
	fx.Invoke(RunHTTP),
)

type Params struct {
	fx.In

	Config  config.Config
	Log     *zap.Logger
	Engine  *gin.Engine
	Metrics *observability.Metrics
	ItemSvc catalogdomain.Service
	Cache   *cache.PageCache `optional:"true"`
}

type Server struct {
	cfg     config.Config
	log     *zap.Logger
	engine  *gin.Engine
	metrics *observability.Metrics
	itemSvc catalogdomain.Service
	cache   *cache.PageCache
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:     p.Config,
		log:     p.Log.Named("server"),
		engine:  p.Engine,
		metrics: p.Metrics,
		itemSvc: p.ItemSvc,
		cache:   p.Cache,
	}
}

// NewEngine builds the gin engine with the envelope-aware middleware chain.
// Unknown routes and methods also answer with envelopes.
func NewEngine(cfg config.Config, log *zap.Logger, metrics *observability.Metrics, tp trace.TracerProvider) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	registerValidation()

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(
		RequestID(),
		AccessLog(log, metrics),
		Tracing(tp),
		Recovery(log),
	)

	engine.NoRoute(func(c *gin.Context) {
		respond(c, http.StatusNotFound, response.NotFound[any]("Route not found"))
	})
	engine.NoMethod(func(c *gin.Context) {
		respond(c, http.StatusMethodNotAllowed, response.FailWithCode[any]("Method not allowed", response.CodeMethodNotAllowed))
	})

	return engine
}

func (s *Server) RegisterRoutes() {
	s.engine.GET("/healthz", s.Health)
	if s.cfg.Metrics.Enabled {
		s.engine.GET(s.cfg.Metrics.Path, gin.WrapH(s.metrics.Handler()))
	}

	api := s.engine.Group("/api")
	{
		api.POST("/items", s.CreateItem)
		api.GET("/items", s.ListItems)
		api.GET("/items/:id", s.GetItem)
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:         s.cfg.HTTP.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.HTTP.ReadTimeout,
		WriteTimeout: s.cfg.HTTP.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			s.log.Info("http server listening", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if s.cfg.HTTP.ShutdownTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, s.cfg.HTTP.ShutdownTimeout)
				defer cancel()
			}
			return srv.Shutdown(ctx)
		},
	})
}
