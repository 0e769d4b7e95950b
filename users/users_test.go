package users_test

import (
	"testing"

	"github.com/jrsteele09/go-social-client/users"
	fakeuserrepo "github.com/jrsteele09/go-social-client/users/repofake"
	"github.com/stretchr/testify/require"
)

// TestPasswordHash tests bcrypt hashing round trip
func TestPasswordHash(t *testing.T) {
	hash, err := users.HashPassword("password123")
	require.NoError(t, err)

	u := &users.User{Name: "kari", PasswordHash: hash}
	require.True(t, u.CheckPassword("password123"))
	require.False(t, u.CheckPassword("password124"))
}

// TestFollowUnfollow tests the following list helpers
func TestFollowUnfollow(t *testing.T) {
	u := &users.User{Name: "kari"}

	require.True(t, u.Follow("ola"))
	require.False(t, u.Follow("ola"))
	require.True(t, u.IsFollowing("ola"))

	require.True(t, u.Unfollow("ola"))
	require.False(t, u.Unfollow("ola"))
	require.False(t, u.IsFollowing("ola"))
}

// TestFakeUserRepo tests lookups by name and normalized email
func TestFakeUserRepo(t *testing.T) {
	repo := fakeuserrepo.NewFakeUserRepo()
	require.NoError(t, repo.Upsert(&users.User{Name: "ola", Email: "Ola@stud.noroff.no"}))
	require.NoError(t, repo.Upsert(&users.User{Name: "kari", Email: "kari@stud.noroff.no"}))

	u, err := repo.GetByEmail(" ola@STUD.noroff.no ")
	require.NoError(t, err)
	require.Equal(t, "ola", u.Name)

	_, err = repo.GetByName("nobody")
	require.ErrorIs(t, err, users.ErrUserNotFound)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "kari", list[0].Name)
}
