package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kellan-Anderson/Vision-Media/internal/annotation/model"
	"github.com/Kellan-Anderson/Vision-Media/internal/driver"
)

func newTestStore(d driver.GraphDriver) *Store {
	logger := zerolog.Nop()
	return NewStore(d, 10*time.Millisecond, &logger)
}

const samplePayload = `{
	"labelAnnotations": [{"description": "dog", "score": 0.9}],
	"webDetection": {
		"webEntities": [{"description": "", "score": 5}, {"description": "Dog", "score": 2}],
		"visuallySimilarImages": [],
		"partialMatchingImages": [],
		"pagesWithMatchingImages": []
	}
}`

func TestSave(t *testing.T) {
	mockDriver := &MockDriver{}
	s := newTestStore(mockDriver)
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	doc, err := s.Save(context.Background(), Document{
		UserID: "user-1",
		URI:    "uploads/dog.jpg",
		Result: model.AnnotationResult{
			LabelAnnotations: []model.LabelAnnotation{{Description: "dog", Score: 0.9}},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, driver.SaveImageDocumentQuery, mockDriver.QueryExecuted)
	assert.Equal(t, doc.ID, mockDriver.QueryParams["id"])
	assert.Equal(t, "user-1", mockDriver.QueryParams["user_id"])
	assert.Equal(t, "uploads/dog.jpg", mockDriver.QueryParams["uri"])
	assert.Equal(t, s.now().UnixMilli(), mockDriver.QueryParams["updated_at"])

	var stored model.AnnotationResult
	require.NoError(t, json.Unmarshal([]byte(mockDriver.QueryParams["payload"].(string)), &stored))
	assert.Equal(t, "dog", stored.LabelAnnotations[0].Description)
}

func TestSave_KeepsID(t *testing.T) {
	mockDriver := &MockDriver{}
	s := newTestStore(mockDriver)

	doc, err := s.Save(context.Background(), Document{ID: "img-1", UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, "img-1", doc.ID)
}

func TestSave_Errors(t *testing.T) {
	s := newTestStore(&MockDriver{Err: fmt.Errorf("db error")})

	_, err := s.Save(context.Background(), Document{UserID: "user-1"})
	assert.ErrorContains(t, err, "db error")

	_, err = s.Save(context.Background(), Document{})
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	mockDriver := &MockDriver{
		MockResult: documentResult(documentRecord("img-1", "user-1", "uploads/dog.jpg", 1709294400000, samplePayload)),
	}
	s := newTestStore(mockDriver)

	doc, err := s.Get(context.Background(), "user-1", "img-1")

	require.NoError(t, err)
	assert.Equal(t, driver.GetImageDocumentQuery, mockDriver.QueryExecuted)
	assert.Equal(t, "img-1", mockDriver.QueryParams["id"])
	assert.Equal(t, "user-1", mockDriver.QueryParams["user_id"])
	assert.Equal(t, "uploads/dog.jpg", doc.URI)
	assert.Equal(t, time.UnixMilli(1709294400000).UTC(), doc.UpdatedAt)
	require.Len(t, doc.Result.WebDetection.WebEntities, 2)
	assert.Equal(t, "Dog", doc.Result.WebDetection.WebEntities[1].Description)
	assert.Nil(t, doc.Result.WebDetection.BestGuessLabels)
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(&MockDriver{MockResult: documentResult()})

	_, err := s.Get(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_BadPayload(t *testing.T) {
	s := newTestStore(&MockDriver{
		MockResult: documentResult(documentRecord("img-1", "user-1", "a/b.jpg", 1, "{not json")),
	})

	_, err := s.Get(context.Background(), "user-1", "img-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	mockDriver := &MockDriver{
		MockResult: documentResult(
			documentRecord("img-2", "user-1", "uploads/cat.jpg", 2, samplePayload),
			documentRecord("broken", "user-1", "uploads/x.jpg", 1, "{"),
			documentRecord("img-1", "user-1", "uploads/dog.jpg", 1, samplePayload),
		),
	}
	s := newTestStore(mockDriver)

	docs, err := s.List(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, driver.ListImageDocumentsQuery, mockDriver.QueryExecuted)
	require.Len(t, docs, 2)
	assert.Equal(t, "img-2", docs[0].ID)
	assert.Equal(t, "img-1", docs[1].ID)
}

func TestList_Error(t *testing.T) {
	s := newTestStore(&MockDriver{Err: fmt.Errorf("db error")})

	_, err := s.List(context.Background(), "user-1")
	assert.ErrorContains(t, err, "db error")
}
