// Package auth validates operator credentials against the stored salted
// digests. Both failure modes (unknown user, wrong password) are
// indistinguishable from the outside.
package auth

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tpvcomida/internal/models"
	"tpvcomida/internal/repository"
)

// Authenticator checks presented credentials against the user repository.
// It is stateless per call: no lockout, throttling or attempt counting.
type Authenticator struct {
	users *repository.Users
	log   *zap.Logger
}

func New(users *repository.Users, log *zap.Logger) *Authenticator {
	return &Authenticator{users: users, log: log}
}

// Validate returns the matched account and true on success, or nil and
// false for both an unknown username and a wrong password.
func (a *Authenticator) Validate(username, password string) (*models.UserAccount, bool) {
	user := a.users.FindByUsername(username)
	if user == nil {
		return nil, false
	}

	digest := strings.TrimSpace(user.Digest)

	if isBcryptDigest(digest) {
		if bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) != nil {
			return nil, false
		}
		return user, true
	}

	// Legacy scheme: hex md5(password+salt), compared case-insensitively.
	calculated := legacyDigest(password, user.Salt)
	if !strings.EqualFold(calculated, digest) {
		return nil, false
	}

	a.upgradeDigest(user, password)
	return user, true
}

// RegisterExit stamps the user's last access on logout.
func (a *Authenticator) RegisterExit(username string) {
	a.users.UpdateLastAccess(username, time.Now())
}

// SetPassword stores a bcrypt digest for the user and persists the whole
// collection. A fresh salt is kept alongside for file compatibility even
// though bcrypt embeds its own.
func (a *Authenticator) SetPassword(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return a.users.UpdateCredentials(username, newSalt(), string(hash))
}

// upgradeDigest rewrites a legacy md5 digest as bcrypt after a successful
// login. Failure only delays the upgrade to the next login.
func (a *Authenticator) upgradeDigest(user *models.UserAccount, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		a.log.Warn("digest upgrade failed", zap.String("username", user.Username), zap.Error(err))
		return
	}

	if err := a.users.UpdateCredentials(user.Username, user.Salt, string(hash)); err != nil {
		a.log.Warn("could not persist upgraded digest",
			zap.String("username", user.Username), zap.Error(err))
		return
	}

	a.log.Info("legacy digest upgraded to bcrypt", zap.String("username", user.Username))
}

func isBcryptDigest(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") ||
		strings.HasPrefix(digest, "$2b$") ||
		strings.HasPrefix(digest, "$2y$")
}

func legacyDigest(password, salt string) string {
	sum := md5.Sum([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

func newSalt() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// fixed marker rather than aborting a password change.
		return "00000000"
	}
	return hex.EncodeToString(buf[:])
}
