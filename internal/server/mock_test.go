package server

import (
	"context"

	"github.com/Kellan-Anderson/Vision-Media/internal/store"
)

type MockProvider struct {
	Docs      map[string]store.Document
	Snapshots []store.Snapshot
	Saved     []store.Document
	Err       error
}

func (m *MockProvider) Get(ctx context.Context, userID, imageID string) (*store.Document, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	doc, ok := m.Docs[userID+"/"+imageID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &doc, nil
}

func (m *MockProvider) List(ctx context.Context, userID string) ([]store.Document, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var docs []store.Document
	for _, doc := range m.Docs {
		if doc.UserID == userID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (m *MockProvider) Save(ctx context.Context, doc store.Document) (*store.Document, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if doc.ID == "" {
		doc.ID = "generated-id"
	}
	m.Saved = append(m.Saved, doc)
	return &doc, nil
}

func (m *MockProvider) Watch(ctx context.Context, userID, imageID string) <-chan store.Snapshot {
	ch := make(chan store.Snapshot, len(m.Snapshots))
	for _, snap := range m.Snapshots {
		ch <- snap
	}
	close(ch)
	return ch
}
