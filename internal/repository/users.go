// Package repository exposes the data files behind entity-specific
// operations. Each repository owns its in-memory collection for the session
// and reloads only on an explicit Refresh.
package repository

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"tpvcomida/internal/models"
	"tpvcomida/internal/store"
)

// Users holds the operator accounts.
type Users struct {
	store  *store.Store
	log    *zap.Logger
	users  []models.UserAccount
	loaded bool
}

func NewUsers(st *store.Store, log *zap.Logger) *Users {
	return &Users{store: st, log: log}
}

// All returns the cached collection, loading it on first use. Never fails:
// load problems degrade to an empty slice.
func (r *Users) All() []models.UserAccount {
	if !r.loaded {
		r.Refresh()
	}
	return r.users
}

// Refresh discards the cache and reloads from disk.
func (r *Users) Refresh() {
	r.users = r.store.LoadUsers()
	r.loaded = true
}

// FindByUsername matches case-insensitively. Returns nil when absent.
func (r *Users) FindByUsername(username string) *models.UserAccount {
	username = strings.TrimSpace(username)
	users := r.All()
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return &users[i]
		}
	}
	return nil
}

// UpdateLastAccess stamps the matching user's last-access time and rewrites
// the whole file. Missing file or user is a no-op; a write failure only
// loses a timestamp, so it is logged and swallowed.
func (r *Users) UpdateLastAccess(username string, t time.Time) {
	user := r.FindByUsername(username)
	if user == nil {
		return
	}

	user.LastAccess = models.NewXMLTime(t)

	if err := r.store.SaveUsers(r.users); err != nil {
		r.log.Warn("could not persist last access", zap.String("username", username), zap.Error(err))
	}
}

// UpdateCredentials replaces the matching user's salt and digest and
// rewrites the whole file.
func (r *Users) UpdateCredentials(username, salt, digest string) error {
	user := r.FindByUsername(username)
	if user == nil {
		return nil
	}

	user.Salt = salt
	user.Digest = digest
	return r.store.SaveUsers(r.users)
}
