package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kellan-Anderson/Vision-Media/internal/annotation/model"
	"github.com/Kellan-Anderson/Vision-Media/internal/session"
	"github.com/Kellan-Anderson/Vision-Media/internal/store"
)

func (s *Server) Me(c *gin.Context) {
	user := currentUser(c)

	greeting := "Hello"
	if first := session.FirstName(user.DisplayName); first != "" {
		greeting += ", " + first
	}

	c.JSON(http.StatusOK, gin.H{
		"uid":         user.UID,
		"displayName": user.DisplayName,
		"email":       user.Email,
		"greeting":    greeting,
	})
}

func (s *Server) ListImages(c *gin.Context) {
	user := currentUser(c)

	docs, err := s.Documents.List(c.Request.Context(), user.UID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.UID).Msg("Failed to list images")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list images"})
		return
	}

	cards := make([]ImageCard, 0, len(docs))
	for _, doc := range docs {
		cards = append(cards, s.imageCard(doc))
	}

	c.JSON(http.StatusOK, gin.H{"images": cards})
}

func (s *Server) GetImage(c *gin.Context) {
	user := currentUser(c)
	id := c.Param("id")

	doc, err := s.Documents.Get(c.Request.Context(), user.UID, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.UID).Str("image_id", id).Msg("Failed to load image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load image"})
		return
	}

	c.JSON(http.StatusOK, s.imagePage(doc))
}

// ImageEvents streams the image page as server-sent events, one "view"
// event per document change, until the client goes away.
func (s *Server) ImageEvents(c *gin.Context) {
	user := currentUser(c)
	id := c.Param("id")

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	for snap := range s.Documents.Watch(c.Request.Context(), user.UID, id) {
		switch {
		case snap.Err == nil:
			c.SSEvent("view", s.imagePage(snap.Document))
		case errors.Is(snap.Err, store.ErrNotFound):
			c.SSEvent("missing", gin.H{"id": id})
		default:
			s.logger.Error().Err(snap.Err).Str("user_id", user.UID).Str("image_id", id).Msg("Failed to watch image")
			c.SSEvent("error", gin.H{"error": "Failed to load image"})
		}
		c.Writer.Flush()
	}
}

type SaveImageRequest struct {
	URI string `json:"uri" binding:"required"`
	model.AnnotationResult
}

// SaveImage stores a vision document for the signed-in user. POST creates a
// new image, PUT /images/:id replaces one.
func (s *Server) SaveImage(c *gin.Context) {
	user := currentUser(c)

	var req SaveImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	doc, err := s.Documents.Save(c.Request.Context(), store.Document{
		ID:     c.Param("id"),
		UserID: user.UID,
		URI:    req.URI,
		Result: req.AnnotationResult,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.UID).Msg("Failed to save image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	status := http.StatusOK
	if c.Request.Method == http.MethodPost {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"status": "success", "id": doc.ID})
}
