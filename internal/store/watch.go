package store

import (
	"context"
	"errors"
	"strconv"
	"time"
)

const defaultPollInterval = 2 * time.Second

// Snapshot is one observation of a watched document. Exactly one of
// Document and Err is set.
type Snapshot struct {
	Document *Document
	Err      error
}

// Watch polls the document and sends a Snapshot for the first observation
// and for every change after it. The channel closes when ctx is done.
func (s *Store) Watch(ctx context.Context, userID, imageID string) <-chan Snapshot {
	interval := s.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	ch := make(chan Snapshot, 1)
	go func() {
		defer close(ch)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := ""
		for {
			doc, err := s.Get(ctx, userID, imageID)
			if ctx.Err() != nil {
				return
			}

			if key := versionKey(doc, err); key != last {
				last = key
				select {
				case ch <- Snapshot{Document: doc, Err: err}:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

func versionKey(doc *Document, err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "missing"
	case err != nil:
		return "error:" + err.Error()
	}
	return "v:" + strconv.FormatInt(doc.UpdatedAt.UnixMilli(), 10)
}
