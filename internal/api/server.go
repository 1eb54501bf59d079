// Package api exposes the advisory engine over HTTP. The engine itself is
// synchronous and stateless per request; all shared state is the immutable
// startup-loaded container, so gin's concurrent handlers need no locking.
package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cropadvisor/domain/advisory"
	"cropadvisor/internal/advisor"
	"cropadvisor/internal/errors"
	"cropadvisor/internal/explain"
	"cropadvisor/ports"
)

// Server is the HTTP surface around the advisor.
type Server struct {
	router     *gin.Engine
	advisor    *advisor.Advisor
	classifier ports.CropClassifier
}

// NewServer wires the routes.
func NewServer(adv *advisor.Advisor, model ports.CropClassifier, mode string) *Server {
	gin.SetMode(mode)
	s := &Server{
		router:     gin.New(),
		advisor:    adv,
		classifier: model,
	}
	s.router.Use(gin.Recovery())

	s.router.GET("/api/health", s.handleHealth)
	s.router.POST("/api/predict", s.handlePredict)
	return s
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	log.Printf("[api] Listening on %s", addr)
	return s.router.Run(addr)
}

// Handler returns the underlying handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// predictResponse bundles the structured result with its explanation.
type predictResponse struct {
	Result      *advisory.PredictionResult `json:"result"`
	Explanation explain.Explanation        `json:"explanation"`
}

func (s *Server) handlePredict(c *gin.Context) {
	var req advisory.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	start := time.Now()
	result, err := s.advisor.Predict(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.GetCode(err) == errors.CodeInvalidInput {
			status = http.StatusBadRequest
		}
		log.Printf("[api] Predict failed for %q: %v", req.District, err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	log.Printf("[api] Predicted %s for %q (%s, %s) in %s",
		result.TopCrops[0], req.District, result.FallbackLevel, result.TopConfidence, time.Since(start))

	c.JSON(http.StatusOK, predictResponse{
		Result:      result,
		Explanation: explain.Explain(result, s.classifier.FeatureImportance()),
	})
}
