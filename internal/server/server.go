package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Kellan-Anderson/Vision-Media/internal/annotation"
	"github.com/Kellan-Anderson/Vision-Media/internal/annotation/model"
	"github.com/Kellan-Anderson/Vision-Media/internal/config"
	"github.com/Kellan-Anderson/Vision-Media/internal/media"
	"github.com/Kellan-Anderson/Vision-Media/internal/observability"
	"github.com/Kellan-Anderson/Vision-Media/internal/session"
	"github.com/Kellan-Anderson/Vision-Media/internal/store"
)

type Server struct {
	Documents store.Provider
	Sessions  session.Provider
	Storage   config.StorageConfig
	logger    *zerolog.Logger
}

func NewServer(docs store.Provider, sessions session.Provider, storage config.StorageConfig, logger *zerolog.Logger) *Server {
	return &Server{
		Documents: docs,
		Sessions:  sessions,
		Storage:   storage,
		logger:    logger,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), s.accessLog())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api", s.requireUser())
	api.GET("/me", s.Me)
	api.GET("/images", s.ListImages)
	api.POST("/images", s.SaveImage)
	api.GET("/images/:id", s.GetImage)
	api.PUT("/images/:id", s.SaveImage)
	api.GET("/images/:id/events", s.ImageEvents)

	return r
}

// ImagePage is everything the image page shows for one document.
type ImagePage struct {
	ID string `json:"id"`
	media.Reference
	UpdatedAt time.Time       `json:"updatedAt"`
	View      model.ViewModel `json:"view"`
}

// ImageCard is one entry of the image list.
type ImageCard struct {
	ID string `json:"id"`
	media.Reference
	BestGuess *string `json:"bestGuess"`
}

func (s *Server) imagePage(doc *store.Document) ImagePage {
	observability.Transforms.Inc()
	return ImagePage{
		ID:        doc.ID,
		Reference: media.Resolve(s.Storage.BaseURL, s.Storage.Bucket, doc.URI),
		UpdatedAt: doc.UpdatedAt,
		View:      annotation.Transform(doc.Result),
	}
}

func (s *Server) imageCard(doc store.Document) ImageCard {
	card := ImageCard{
		ID:        doc.ID,
		Reference: media.Resolve(s.Storage.BaseURL, s.Storage.Bucket, doc.URI),
	}
	if labels := doc.Result.WebDetection.BestGuessLabels; len(labels) > 0 {
		label := labels[0].Label
		card.BestGuess = &label
	}
	return card
}
