package outbox

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Store persists pending emails in BoltDB so notifications survive restarts
// and SMTP outages without ever joining a database transaction.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path string, bucket string) (*Store, error) {
	if bucket == "" {
		bucket = "outbox"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

// Enqueue stores a message keyed by enqueue time so draining preserves order.
func (s *Store) Enqueue(msg Message) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	msg.normalize()
	msg.bucketKey = []byte(buildKey(msg))

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put(msg.bucketKey, payload)
	})
}

// GetBatch returns up to limit messages without removing them.
func (s *Store) GetBatch(limit int) ([]Message, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	if limit <= 0 {
		limit = 50
	}

	var messages []Message
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(s.bucket).Cursor()
		for k, v := c.First(); k != nil && len(messages) < limit; k, v = c.Next() {
			var msg Message
			if err := json.Unmarshal(v, &msg); err != nil {
				continue
			}
			msg.bucketKey = append([]byte(nil), k...)
			messages = append(messages, msg)
		}
		return nil
	})
	return messages, err
}

// Remove deletes the provided message from the outbox.
func (s *Store) Remove(msg Message) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if len(msg.bucketKey) == 0 {
		return s.deleteByID(msg.ID)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete(msg.bucketKey)
	})
}

// Requeue re-inserts a message after bumping its timestamp, pushing it to the
// back of the queue for the next drain.
func (s *Store) Requeue(msg Message) error {
	msg.bucketKey = nil
	msg.Timestamp = time.Now()
	return s.Enqueue(msg)
}

// Size returns the number of pending messages.
func (s *Store) Size() (int, error) {
	if s == nil || s.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(s.bucket).Stats().KeyN
		return nil
	})
	return count, err
}

// Cleanup removes messages older than the provided timestamp.
func (s *Store) Cleanup(olderThan time.Time) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		c := tx.Bucket(s.bucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var msg Message
			if err := json.Unmarshal(v, &msg); err != nil {
				continue
			}
			if msg.Timestamp.Before(olderThan) {
				if err := c.Delete(); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) deleteByID(id string) error {
	if id == "" {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		c := tx.Bucket(s.bucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var msg Message
			if err := json.Unmarshal(v, &msg); err != nil {
				continue
			}
			if msg.ID == id {
				return c.Delete()
			}
		}
		return nil
	})
}

func buildKey(msg Message) string {
	return fmt.Sprintf("%020d_%s", msg.Timestamp.UnixNano(), msg.ID)
}
