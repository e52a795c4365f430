// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tmoriguchi/mindtracer/internal/model"
)

// EntryStore owns the entry collection and is the sole source feeding the
// analysis engine. Implementations serialize their own mutations so every
// All call hands out a consistent snapshot; the engine only reads and
// never calls back into the store.
type EntryStore interface {
	// All returns a snapshot of every entry in insertion order.
	All() []model.Entry
	// Get returns the entry with the given ID.
	Get(id uuid.UUID) (model.Entry, bool)
	Add(entry model.Entry) error
	Delete(id uuid.UUID) error
	Replace(entry model.Entry) error
	// Subscribe registers a callback invoked after every successful
	// mutation.
	Subscribe(fn func())
}

// SavedLocationStore persists the user's named coordinates.
type SavedLocationStore interface {
	All() []model.SavedLocation
	Add(loc model.SavedLocation) error
	Delete(id string) error
}

// RecordStore holds the account records: one user profile, one
// subscription status, and broadcast messages.
type RecordStore interface {
	SaveUser(ctx context.Context, user *model.UserProfile) error
	GetUser(ctx context.Context) (*model.UserProfile, error)

	SaveSubscription(ctx context.Context, sub *model.SubscriptionStatus) error
	GetSubscription(ctx context.Context) (*model.SubscriptionStatus, error)

	SaveMessage(ctx context.Context, msg *model.Message) error
	ListMessages(ctx context.Context, activeOnly bool) ([]model.Message, error)
	DeleteMessage(ctx context.Context, id string) error

	Migrate(ctx context.Context) error
	Close() error
}

// ImportResult summarizes one health-export import run.
type ImportResult struct {
	Imported int
	Skipped  int
}
