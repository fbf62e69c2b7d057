package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/model"
)

// Key layout. Session records live under sessionDataPrefix keyed by ID; a
// second time-ordered index under sessionTimePrefix makes newest-first
// listing a reverse prefix scan.
const (
	sessionDataPrefix = "sessions:data:"
	sessionTimePrefix = "sessions:ts:"
	statusPrefix      = "status:"
)

// Badger is a Store backed by BadgerDB v4.
type Badger struct {
	db *badger.DB
}

// Options configures the Badger store.
type Options struct {
	// Dir is the directory for database files. Required unless InMemory.
	Dir string

	// InMemory runs the database without disk persistence. Useful for
	// tests that want a real badger engine.
	InMemory bool

	// Logger receives badger's internal log output. If nil, badger's
	// default stderr logger is used.
	Logger badger.Logger
}

// Open opens or creates the database.
func Open(opts Options) (*Badger, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, errors.New("store: Options.Dir is required for on-disk mode")
	}

	dbOpts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		dbOpts = dbOpts.WithInMemory(true).WithDir("").WithValueDir("")
	}
	if opts.Logger != nil {
		dbOpts = dbOpts.WithLogger(opts.Logger)
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}
	return &Badger{db: db}, nil
}

// Close releases the underlying database.
func (b *Badger) Close() error { return b.db.Close() }

func sessionDataKey(id string) []byte {
	return []byte(sessionDataPrefix + id)
}

func sessionTimeKey(s model.AnimationSession) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", sessionTimePrefix, s.CreatedAt.UnixNano(), s.ID))
}

func statusKey(c model.StatusCheck) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", statusPrefix, c.Timestamp.UnixNano(), c.ID))
}

// PutSession stores a session record and its time-index entry.
func (b *Badger) PutSession(_ context.Context, s model.AnimationSession) error {
	val, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("store: marshal session: %w", err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(sessionDataKey(s.ID), val); err != nil {
			return err
		}
		return txn.Set(sessionTimeKey(s), []byte(s.ID))
	})
}

// GetSession retrieves a session by ID, frames included.
func (b *Badger) GetSession(_ context.Context, id string) (model.AnimationSession, error) {
	var s model.AnimationSession
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionDataKey(id))
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return json.Unmarshal(val, &s)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return model.AnimationSession{}, ErrNotFound
	}
	return s, err
}

// RecentSessions returns up to limit sessions, newest first. The frame
// payload is stripped to keep listings small.
func (b *Badger) RecentSessions(_ context.Context, limit int) ([]model.AnimationSession, error) {
	if limit <= 0 {
		return nil, nil
	}

	out := make([]model.AnimationSession, 0, limit)
	err := b.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Reverse = true
		it := txn.NewIterator(iterOpts)
		defer it.Close()

		prefix := []byte(sessionTimePrefix)
		// Seek past the last possible key in the prefix range.
		seek := append(append([]byte{}, prefix...), 0xFF)

		for it.Seek(seek); it.ValidForPrefix(prefix) && len(out) < limit; it.Next() {
			id, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}

			item, err := txn.Get(sessionDataKey(string(id)))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue // index entry without a record; skip
			}
			if err != nil {
				return err
			}
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}

			var s model.AnimationSession
			if err := json.Unmarshal(val, &s); err != nil {
				return fmt.Errorf("store: unmarshal session %s: %w", id, err)
			}
			s.Frames = nil
			out = append(out, s)
		}
		return nil
	})
	return out, err
}

// PutStatus stores a status check.
func (b *Badger) PutStatus(_ context.Context, c model.StatusCheck) error {
	val, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("store: marshal status: %w", err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(statusKey(c), val)
	})
}

// ListStatus returns up to limit status checks, oldest first.
func (b *Badger) ListStatus(_ context.Context, limit int) ([]model.StatusCheck, error) {
	if limit <= 0 {
		return nil, nil
	}

	out := make([]model.StatusCheck, 0)
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(statusPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix) && len(out) < limit; it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			var c model.StatusCheck
			if err := json.Unmarshal(val, &c); err != nil {
				return fmt.Errorf("store: unmarshal status: %w", err)
			}
			out = append(out, c)
		}
		return nil
	})
	return out, err
}
