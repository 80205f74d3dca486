package store

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/McFlayr/meal-planner/internal/migrate"
	"github.com/McFlayr/meal-planner/internal/model"
)

// Session owns the single in-memory document for the lifetime of the
// process. Mutating callers change the document and then Commit; the
// model is strictly single-user and synchronous, so no locking is done.
type Session struct {
	store DocumentStore
	doc   *model.Document
}

// Open loads the document from the store, running the legacy weekly plan
// migration if needed. A migrated (or brand new) document is persisted
// right away so later loads skip the migration.
func Open(s DocumentStore) (*Session, error) {
	raw, exists, err := s.Read()
	if err != nil {
		return nil, err
	}

	doc, migrated, err := migrate.Parse(raw)
	if err != nil {
		return nil, err
	}

	sess := &Session{store: s, doc: doc}
	if migrated {
		log.Printf("migrated weekly plan from legacy format")
	}
	if migrated || !exists {
		if err := sess.Commit(); err != nil {
			return nil, fmt.Errorf("failed to persist loaded document: %w", err)
		}
	}
	return sess, nil
}

// Document returns the live in-memory document.
func (s *Session) Document() *model.Document {
	return s.doc
}

// Replace swaps the in-memory document, used by backup import in replace
// mode. The caller still commits.
func (s *Session) Replace(doc *model.Document) {
	s.doc = doc
}

// Commit serializes the document and overwrites the store.
func (s *Session) Commit() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	return s.store.Write(data)
}
