package mockapi

// Route path constants
// All stub API routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes
	RouteAuthRegister     = "/auth/register"
	RouteAuthLogin        = "/auth/login"
	RouteAuthCreateAPIKey = "/auth/create-api-key"

	// Social Routes - Posts
	RoutePosts = "/social/posts"
	RoutePost  = "/social/posts/{id}"

	// Social Routes - Profiles
	RouteProfile         = "/social/profiles/{name}"
	RouteProfilePosts    = "/social/profiles/{name}/posts"
	RouteProfileFollow   = "/social/profiles/{name}/follow"
	RouteProfileUnfollow = "/social/profiles/{name}/unfollow"

	// Health
	RouteHealth = "/health"
)
