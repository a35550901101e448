package api

import (
	"github.com/gin-gonic/gin"

	"github.com/savthe/prediction-confidence/app"
	"github.com/savthe/prediction-confidence/internal"
	"github.com/savthe/prediction-confidence/internal/config"
)

// Server is the HTTP surface over the confidence service
type Server struct {
	router  *gin.Engine
	service *app.ConfidenceService
	log     *internal.Logger
}

// NewServer creates the server and registers all routes
func NewServer(cfg config.ServerConfig, service *app.ConfidenceService) *Server {
	gin.SetMode(cfg.GinMode)

	s := &Server{
		router:  gin.Default(),
		service: service,
		log:     internal.NewLogger("api"),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/evaluate", s.handleEvaluate)
		v1.GET("/distributions", s.handleListDistributions)
		v1.POST("/distributions", s.handleRegisterDistribution)
	}
}

// Router exposes the underlying engine, used by tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts serving on the given port and blocks
func (s *Server) Run(port string) error {
	s.log.Info("api server listening on :%s", port)
	return s.router.Run(":" + port)
}
