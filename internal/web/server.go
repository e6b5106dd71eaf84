package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bizstat/internal/api"
	"bizstat/internal/config"
	"bizstat/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// LookupService is the batch lookup dependency of the web handlers.
type LookupService interface {
	Lookup(ctx context.Context, numbers []string) ([]api.StatusRecord, error)
}

type Server struct {
	svc        LookupService
	serviceKey string
	debug      bool
	log        *logger.Logger
}

func New(svc LookupService, cfg config.Config, log *logger.Logger) *Server {
	return &Server{
		svc:        svc,
		serviceKey: cfg.ServiceKey,
		debug:      cfg.DebugMode,
		log:        log,
	}
}

// Routes builds the gin engine with all pages and endpoints mounted.
func (s *Server) Routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if s.debug {
		router.Use(cors.New(cors.Config{
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Type", "Content-Disposition"},
			AllowOriginFunc: func(origin string) bool {
				return true
			},
			MaxAge: 12 * time.Hour,
		}))
	}

	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	router.GET("/", s.Index)
	router.POST("/lookup", s.Lookup)
	router.POST("/upload", s.Upload)
	router.POST("/export", s.Export)
	router.GET("/healthz", s.Healthz)

	return router
}

func (s *Server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
