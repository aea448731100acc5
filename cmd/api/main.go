package main

import (
	"bytes"
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"creditid3/internal/app"
	"creditid3/internal/config"
	"creditid3/internal/data"
	"creditid3/internal/features"
	"creditid3/internal/models"
	"creditid3/internal/report"
	"creditid3/pkg/utils"
)

type server struct {
	model  *models.DecisionTree
	dim    int
	apiKey string
	before report.Metrics
	after  report.Metrics
	prunes []models.PruneReport
}

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	cfg, err := config.Load(os.Getenv("ID3_CONFIG"))
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		logger.Fatal("Configuração inválida", zap.Error(err))
	}

	splits, err := app.LoadSplits(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Falha ao carregar datasets", zap.Error(err))
	}
	res, err := app.Train(splits, cfg, logger, nil)
	if err != nil {
		logger.Fatal("Falha ao treinar", zap.Error(err))
	}

	s := &server{
		model:  res.Tree,
		dim:    cfg.Dim,
		apiKey: cfg.APIKey,
		before: res.Before,
		after:  res.After,
		prunes: res.Prunes,
	}
	logger.Info("Servindo modelo", zap.String("model", s.model.Name()), zap.String("port", cfg.Port))
	if err := s.routes().Run(":" + cfg.Port); err != nil {
		logger.Fatal("Servidor encerrado", zap.Error(err))
	}
}

func (s *server) routes() *gin.Engine {
	r := gin.Default()
	r.GET("/metrics", s.handleMetrics)
	r.GET("/tree", s.handleTree)

	api := r.Group("/")
	api.Use(s.apiKeyMiddleware)
	api.POST("/predict", s.handlePredict)
	api.POST("/batch", s.handleBatch)
	return r
}

func (s *server) apiKeyMiddleware(c *gin.Context) {
	if s.apiKey == "" {
		c.Next()
		return
	}
	if c.GetHeader("X-API-Key") != s.apiKey {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Next()
}

type predictReq struct {
	Features []float64 `json:"features" binding:"required"`
}

func (s *server) vector(req predictReq) (data.FeatureVector, error) {
	// the label is not known at prediction time and is never read
	return data.NewFeatureVector(req.Features, 0, s.dim)
}

func (s *server) handlePredict(c *gin.Context) {
	var req predictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	v, err := s.vector(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"default": models.Predict(s.model.Root, v), "model": s.model.Name()})
}

func (s *server) handleBatch(c *gin.Context) {
	var items []predictReq
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ds := make(data.Dataset, 0, len(items))
	for i, it := range items {
		v, err := s.vector(it)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "index": i})
			return
		}
		ds = append(ds, v)
	}
	c.JSON(http.StatusOK, gin.H{"defaults": s.model.Predict(ds), "model": s.model.Name()})
}

func (s *server) handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"model":    s.model.Name(),
		"unpruned": s.before,
		"pruned":   s.after,
		"prunes":   len(s.prunes),
	})
}

func (s *server) handleTree(c *gin.Context) {
	var buf bytes.Buffer
	if err := report.WriteTree(&buf, s.model.Root, features.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, buf.String())
}
