package store

import (
	"context"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type MockDriver struct {
	mu            sync.Mutex
	QueryExecuted string
	QueryParams   map[string]interface{}
	Calls         int
	MockResult    neo4j.EagerResult
	ResultQueue   []neo4j.EagerResult
	Err           error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.QueryExecuted = query
	m.QueryParams = params
	m.Calls++
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	if len(m.ResultQueue) > 0 {
		res := m.ResultQueue[0]
		m.ResultQueue = m.ResultQueue[1:]
		return res, nil
	}
	return m.MockResult, nil
}

func (m *MockDriver) BuildIndices(ctx context.Context) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

var documentKeys = []string{"id", "user_id", "uri", "updated_at", "payload"}

func documentRecord(id, userID, uri string, updatedAt int64, payload string) *neo4j.Record {
	return &neo4j.Record{
		Keys:   documentKeys,
		Values: []any{id, userID, uri, updatedAt, payload},
	}
}

func documentResult(records ...*neo4j.Record) neo4j.EagerResult {
	return neo4j.EagerResult{Keys: documentKeys, Records: records}
}
