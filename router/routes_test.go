package router_test

import (
	"testing"

	"github.com/jrsteele09/go-social-client/router"
	"github.com/stretchr/testify/require"
)

// TestParse tests path matching and query extraction
func TestParse(t *testing.T) {
	tests := []struct {
		location string
		path     router.Path
		params   map[string]string
	}{
		{"", router.PathLogin, map[string]string{}},
		{"#", router.PathLogin, map[string]string{}},
		{"#/feed", router.PathFeed, map[string]string{}},
		{"#/post?id=42", router.PathPost, map[string]string{"id": "42"}},
		{"#/post?id=42&edit=true", router.PathPost, map[string]string{"id": "42", "edit": "true"}},
		{"#/profile?name=%20kari%20", router.PathProfile, map[string]string{"name": "kari"}},
		{"#/post?id=", router.PathPost, map[string]string{}},
		{"#/feed?tag=go#top", router.PathFeed, map[string]string{"tag": "go"}},
		{"/feed", router.PathFeed, map[string]string{}},
		{"#/nowhere?x=1", router.Path("#/nowhere"), map[string]string{"x": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			route := router.Parse(tt.location)
			require.Equal(t, tt.path, route.Path)
			require.Equal(t, tt.params, route.Params)
		})
	}
}

// TestLocation tests building locations, round tripping through Parse
func TestLocation(t *testing.T) {
	require.Equal(t, "#/feed", router.Location(router.PathFeed, nil))
	require.Equal(t, "#/feed", router.Location(router.PathFeed, map[string]string{"tag": " "}))
	require.Equal(t, "#/post?edit=true&id=7", router.Location(router.PathPost, map[string]string{"id": "7", "edit": "true"}))

	loc := router.Location(router.PathProfile, map[string]string{"name": "a b&c"})
	require.Equal(t, "a b&c", router.Parse(loc).Param("name"))
}

// TestAccess tests the guard class of every path
func TestAccess(t *testing.T) {
	require.Equal(t, router.AccessGuest, router.PathLogin.Access())
	require.Equal(t, router.AccessGuest, router.PathRegister.Access())
	for _, p := range []router.Path{router.PathFeed, router.PathCreate, router.PathPost, router.PathProfile} {
		require.Equal(t, router.AccessAuthenticated, p.Access())
	}
	require.Equal(t, router.AccessUnconditional, router.PathLogout.Access())
	require.Equal(t, router.AccessUnknown, router.Path("#/x").Access())
}
