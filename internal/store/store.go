// Package store keeps the per-user vision documents in Memgraph and hands
// them out as immutable snapshots.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"

	"github.com/Kellan-Anderson/Vision-Media/internal/annotation/model"
	"github.com/Kellan-Anderson/Vision-Media/internal/driver"
	"github.com/Kellan-Anderson/Vision-Media/internal/observability"
)

var ErrNotFound = errors.New("document not found")

// Document is one analysed image owned by a user.
type Document struct {
	ID        string
	UserID    string
	URI       string
	UpdatedAt time.Time
	Result    model.AnnotationResult
}

// Provider is what the HTTP layer needs from the document store.
type Provider interface {
	Get(ctx context.Context, userID, imageID string) (*Document, error)
	List(ctx context.Context, userID string) ([]Document, error)
	Save(ctx context.Context, doc Document) (*Document, error)
	Watch(ctx context.Context, userID, imageID string) <-chan Snapshot
}

type Store struct {
	Driver       driver.GraphDriver
	PollInterval time.Duration
	logger       *zerolog.Logger
	now          func() time.Time
}

func NewStore(d driver.GraphDriver, pollInterval time.Duration, logger *zerolog.Logger) *Store {
	return &Store{
		Driver:       d,
		PollInterval: pollInterval,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *Store) BuildIndices(ctx context.Context) error {
	return s.Driver.BuildIndices(ctx)
}

func (s *Store) Save(ctx context.Context, doc Document) (*Document, error) {
	if doc.UserID == "" {
		return nil, errors.New("document has no owner")
	}
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	doc.UpdatedAt = s.now().UTC().Truncate(time.Millisecond)

	payload, err := json.Marshal(doc.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode annotations: %w", err)
	}

	params := map[string]interface{}{
		"id":         doc.ID,
		"user_id":    doc.UserID,
		"uri":        doc.URI,
		"updated_at": doc.UpdatedAt.UnixMilli(),
		"payload":    string(payload),
	}

	if _, err := s.Driver.ExecuteQuery(ctx, driver.SaveImageDocumentQuery, params); err != nil {
		observability.StoreErrors.WithLabelValues("save").Inc()
		return nil, fmt.Errorf("failed to save document %s: %w", doc.ID, err)
	}

	s.logger.Debug().Str("user_id", doc.UserID).Str("image_id", doc.ID).Msg("Saved document")
	return &doc, nil
}

func (s *Store) Get(ctx context.Context, userID, imageID string) (*Document, error) {
	res, err := s.Driver.ExecuteQuery(ctx, driver.GetImageDocumentQuery, map[string]interface{}{
		"user_id": userID,
		"id":      imageID,
	})
	if err != nil {
		observability.StoreErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("failed to load document %s: %w", imageID, err)
	}
	if len(res.Records) == 0 {
		return nil, ErrNotFound
	}

	doc, err := decodeDocument(res.Records[0])
	if err != nil {
		observability.StoreErrors.WithLabelValues("decode").Inc()
		return nil, err
	}
	return doc, nil
}

func (s *Store) List(ctx context.Context, userID string) ([]Document, error) {
	res, err := s.Driver.ExecuteQuery(ctx, driver.ListImageDocumentsQuery, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		observability.StoreErrors.WithLabelValues("list").Inc()
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]Document, 0, len(res.Records))
	for _, rec := range res.Records {
		doc, err := decodeDocument(rec)
		if err != nil {
			// One bad payload should not hide the rest of the list.
			observability.StoreErrors.WithLabelValues("decode").Inc()
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("Skipping undecodable document")
			continue
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

func decodeDocument(rec *neo4j.Record) (*Document, error) {
	doc := &Document{
		ID:     recordString(rec, "id"),
		UserID: recordString(rec, "user_id"),
		URI:    recordString(rec, "uri"),
	}

	if ms, ok := rec.Get("updated_at"); ok {
		if v, ok := ms.(int64); ok {
			doc.UpdatedAt = time.UnixMilli(v).UTC()
		}
	}

	payload := recordString(rec, "payload")
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &doc.Result); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", doc.ID, err)
		}
	}
	return doc, nil
}

func recordString(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
