package boltdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

const (
	keyNodeID = "node_id"
)

// NodeID returns the client installation id, creating it on first call
func (s *Storage) NodeID(ctx context.Context) (string, error) {
	var id string

	err := s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMeta)
		if bucket == nil {
			return fmt.Errorf("meta bucket not found")
		}

		if v := bucket.Get([]byte(keyNodeID)); v != nil {
			id = string(v)
			return nil
		}

		// Первый запуск: генерируем ID
		id = uuid.New().String()
		if err := bucket.Put([]byte(keyNodeID), []byte(id)); err != nil {
			return fmt.Errorf("failed to save node id: %w", err)
		}
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get node id: %w", err)
	}

	return id, nil
}
