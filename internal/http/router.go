package http

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/resumehub/resumehub/internal/graph"
	"github.com/resumehub/resumehub/internal/http/handlers"
	"github.com/resumehub/resumehub/internal/observability"
	"github.com/resumehub/resumehub/internal/repo/postgres"
)

func NewRouter(log *slog.Logger, pool *pgxpool.Pool, prom *observability.Prom, promReg *prometheus.Registry) *gin.Engine {
	cfgEnv := os.Getenv("APP_ENV")

	if cfgEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(CORSMiddleware())
	r.Use(otelgin.Middleware("resumehub"))

	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
	}

	// health
	ping := func() error {
		if pool == nil {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		return pool.Ping(ctx)
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if promReg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))
	}

	// service descriptor
	root := handlers.NewRootHandler()
	r.GET("/", root.Index)

	// wire up repositories and the schema
	usersRepo := postgres.NewUsersRepo(pool, prom)
	educationRepo := postgres.NewEducationRepo(pool, prom)
	jobsRepo := postgres.NewJobExperienceRepo(pool, prom)

	resolver := graph.NewResolver(usersRepo, educationRepo, jobsRepo, log)
	schema := graph.MustParseSchema(resolver)

	gql := handlers.NewGraphQLHandler(schema, postgres.NewSessions(pool))
	r.POST("/graphql", gql.Query)
	r.GET("/graphql", gql.Playground)

	return r
}
