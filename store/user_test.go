package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserCreate_HashesAndHidesPassword(t *testing.T) {
	db := setupTestDB()
	_, _, _, users := setupRepos(db)

	user, err := users.Create("alice", "a@x.com", "secret1")
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Empty(t, user.Password)

	stored, err := users.FindByEmail("a@x.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, stored.Password)
	assert.NotEqual(t, "secret1", stored.Password)
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db := setupTestDB()
	_, _, _, users := setupRepos(db)

	_, err := users.Create("alice", "a@x.com", "secret1")
	assert.NoError(t, err)

	_, err = users.Create("bob", "a@x.com", "secret2")
	assert.Error(t, err)

	var dup *DuplicateError
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, "email", dup.Field)
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	db := setupTestDB()
	_, _, _, users := setupRepos(db)

	_, err := users.Create("alice", "a@x.com", "secret1")
	assert.NoError(t, err)

	_, err = users.Create("alice", "b@x.com", "secret2")
	assert.Error(t, err)

	var dup *DuplicateError
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, "username", dup.Field)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB()
	_, _, _, users := setupRepos(db)

	created, err := users.Create("alice", "a@x.com", "secret1")
	assert.NoError(t, err)

	user, err := users.Authenticate("a@x.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Empty(t, user.Password)
}

func TestAuthenticate_FailuresCollapse(t *testing.T) {
	db := setupTestDB()
	_, _, _, users := setupRepos(db)

	users.Create("alice", "a@x.com", "secret1")

	// wrong password and unknown email must be indistinguishable
	_, wrongPassword := users.Authenticate("a@x.com", "wrong")
	_, unknownEmail := users.Authenticate("nobody@x.com", "secret1")

	assert.ErrorIs(t, wrongPassword, ErrUnauthorized)
	assert.ErrorIs(t, unknownEmail, ErrUnauthorized)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestFindByID_HidesHash(t *testing.T) {
	db := setupTestDB()
	_, _, _, users := setupRepos(db)

	created, _ := users.Create("alice", "a@x.com", "secret1")

	user, err := users.FindByID(created.ID)
	assert.NoError(t, err)
	assert.Empty(t, user.Password)
	assert.Equal(t, "alice", user.Username)
}

func TestFindByID_NotFound(t *testing.T) {
	db := setupTestDB()
	_, _, _, users := setupRepos(db)

	_, err := users.FindByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}
