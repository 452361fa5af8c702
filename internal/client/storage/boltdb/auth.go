package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/liveclient/internal/client/storage"
)

var tokenKey = []byte("bearer")

// SaveToken stores the bearer token
func (s *Storage) SaveToken(ctx context.Context, token string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if err := bucket.Put(tokenKey, []byte(token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		return nil
	})
}

// GetToken retrieves the stored bearer token
func (s *Storage) GetToken(ctx context.Context) (string, error) {
	var token string

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data := bucket.Get(tokenKey)
		if data == nil {
			return storage.ErrTokenNotFound
		}

		// bbolt отдает срез, живущий только внутри транзакции
		token = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return token, nil
}

// DeleteToken removes the stored bearer token
func (s *Storage) DeleteToken(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if bucket.Get(tokenKey) == nil {
			return storage.ErrTokenNotFound
		}

		if err := bucket.Delete(tokenKey); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}

		return nil
	})
}
