package session

import (
	"testing"
	"time"

	"databrew/models"

	"github.com/stretchr/testify/assert"
)

var admin = models.User{ID: 1, Email: "admin@databrew.com", FullName: "Admin User", Role: "admin"}

func TestCreateAndGet(t *testing.T) {
	store := NewMemoryStore()

	token := store.Create(admin, time.Hour)
	assert.NotEmpty(t, token)

	user, ok := store.Get(token)
	assert.True(t, ok)
	assert.Equal(t, admin, user)
	assert.True(t, store.IsValid(token))
}

func TestTokensAreUnique(t *testing.T) {
	store := NewMemoryStore()

	a := store.Create(admin, time.Hour)
	b := store.Create(admin, time.Hour)
	assert.NotEqual(t, a, b)
}

func TestUnknownToken(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get("no-such-token")
	assert.False(t, ok)
	assert.False(t, store.IsValid("no-such-token"))
}

func TestExpiredTokenIsInvalid(t *testing.T) {
	store := NewMemoryStore()

	token := store.Create(admin, -time.Second)
	assert.False(t, store.IsValid(token))

	_, ok := store.Get(token)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	store := NewMemoryStore()

	token := store.Create(admin, time.Hour)
	store.Delete(token)
	assert.False(t, store.IsValid(token))

	// Deleting again is a no-op.
	store.Delete(token)
}
