package ports

import (
	"context"

	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
)

// EntryRepository is the boundary to the external hosted entry store. Every
// operation is scoped by ownerID (the authenticated user's identity); the
// store never returns another user's entries. Any call may fail with a remote
// error, which implementations wrap without retrying.
type EntryRepository interface {
	SaveEntry(ctx context.Context, ownerID string, entry domain.WorkEntry) error
	FindEntryByID(ctx context.Context, ownerID string, entryID string) (*domain.WorkEntry, error)
	ListEntries(ctx context.Context, ownerID string) ([]domain.WorkEntry, error)
	UpdateEntry(ctx context.Context, ownerID string, entry domain.WorkEntry) error
	DeleteEntry(ctx context.Context, ownerID string, entryID string) error
}

// UserRepository persists user accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
