package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/liveclient/internal/client/storage"
	"github.com/iudanet/liveclient/internal/models"
)

// SavePageState stores the state of one page keyed by URL
func (s *Storage) SavePageState(ctx context.Context, state *models.PageState) error {
	if state == nil || state.URL == "" {
		return fmt.Errorf("page state without url")
	}

	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPages)
		if bucket == nil {
			return fmt.Errorf("pages bucket not found")
		}

		stateCopy := *state
		if stateCopy.UpdatedAt == 0 {
			stateCopy.UpdatedAt = time.Now().Unix()
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(&stateCopy)
		if err != nil {
			return fmt.Errorf("failed to marshal page state: %w", err)
		}

		if err := bucket.Put([]byte(state.URL), data); err != nil {
			return fmt.Errorf("failed to save page state: %w", err)
		}

		return nil
	})
}

// GetPageState retrieves the stored state of a page
func (s *Storage) GetPageState(ctx context.Context, url string) (*models.PageState, error) {
	var state *models.PageState

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPages)
		if bucket == nil {
			return fmt.Errorf("pages bucket not found")
		}

		data := bucket.Get([]byte(url))
		if data == nil {
			return storage.ErrPageStateNotFound
		}

		state = &models.PageState{}
		if err := json.Unmarshal(data, state); err != nil {
			return fmt.Errorf("failed to unmarshal page state: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return state, nil
}

// DeletePageState removes the stored state of a page
func (s *Storage) DeletePageState(ctx context.Context, url string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPages)
		if bucket == nil {
			return fmt.Errorf("pages bucket not found")
		}

		if bucket.Get([]byte(url)) == nil {
			return storage.ErrPageStateNotFound
		}

		if err := bucket.Delete([]byte(url)); err != nil {
			return fmt.Errorf("failed to delete page state: %w", err)
		}

		return nil
	})
}
