package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savthe/prediction-confidence/app"
	"github.com/savthe/prediction-confidence/domain/core"
	"github.com/savthe/prediction-confidence/domain/dist"
	"github.com/savthe/prediction-confidence/models"
)

// EvaluateRequest asks how surprising an observation is under a distribution.
type EvaluateRequest struct {
	Distribution string   `json:"distribution"`
	X            *float64 `json:"x" binding:"required"`
}

// EvaluateResponse carries the two-sided confidence level for the observation.
type EvaluateResponse struct {
	Distribution string  `json:"distribution"`
	X            float64 `json:"x"`
	Confidence   float64 `json:"confidence"`
}

// RegisterDistributionRequest describes a new named distribution. Support and
// resolution default to mean +/- 6 stdev at 10000 points when omitted.
type RegisterDistributionRequest struct {
	Name   string   `json:"name" binding:"required"`
	Mean   *float64 `json:"mean" binding:"required"`
	Stdev  *float64 `json:"stdev" binding:"required"`
	Points int      `json:"points"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleEvaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "x is required and must be a number"})
		return
	}

	name := req.Distribution
	conf, err := s.service.Evaluate(c.Request.Context(), name, *req.X)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		s.log.Error("evaluate failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "evaluation failed"})
		return
	}

	if name == "" {
		name = app.DefaultName
	}
	c.JSON(http.StatusOK, EvaluateResponse{
		Distribution: name,
		X:            *req.X,
		Confidence:   conf,
	})
}

func (s *Server) handleListDistributions(c *gin.Context) {
	list, err := s.service.List(c.Request.Context())
	if err != nil {
		s.log.Error("list distributions failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list distributions"})
		return
	}
	if list == nil {
		list = []*models.Distribution{}
	}
	c.JSON(http.StatusOK, gin.H{"distributions": list})
}

func (s *Server) handleRegisterDistribution(c *gin.Context) {
	var req RegisterDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, mean and stdev are required"})
		return
	}

	d := models.NewDistribution(req.Name, dist.Params{Mean: *req.Mean, Stdev: *req.Stdev})
	if req.Points > 0 {
		d.Points = req.Points
	}

	if err := s.service.Register(c.Request.Context(), d); err != nil {
		if core.IsConfigError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.log.Error("register distribution failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register distribution"})
		return
	}

	c.JSON(http.StatusCreated, d)
}
