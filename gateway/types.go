package gateway

import "time"

// Media is an image reference used for avatars, banners and post media
type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Author is the embedded profile summary returned with `_author=true`
type Author struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Bio    string `json:"bio,omitempty"`
	Avatar *Media `json:"avatar,omitempty"`
	Banner *Media `json:"banner,omitempty"`
}

// Comment on a post, returned with `_comments=true`
type Comment struct {
	ID      int       `json:"id"`
	Body    string    `json:"body"`
	Owner   string    `json:"owner"`
	Created time.Time `json:"created"`
	Author  *Author   `json:"author,omitempty"`
}

// Reaction on a post, returned with `_reactions=true`
type Reaction struct {
	Symbol   string   `json:"symbol"`
	Count    int      `json:"count"`
	Reactors []string `json:"reactors,omitempty"`
}

// PostCount is the `_count` block of a post
type PostCount struct {
	Comments  int `json:"comments"`
	Reactions int `json:"reactions"`
}

// Post is a transient copy of a remote post
type Post struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Media     *Media     `json:"media,omitempty"`
	Created   time.Time  `json:"created"`
	Updated   time.Time  `json:"updated"`
	Author    *Author    `json:"author,omitempty"`
	Comments  []Comment  `json:"comments,omitempty"`
	Reactions []Reaction `json:"reactions,omitempty"`
	Count     *PostCount `json:"_count,omitempty"`
}

// PostInput is the body of create and update post requests
type PostInput struct {
	Title string   `json:"title"`
	Body  string   `json:"body,omitempty"`
	Tags  []string `json:"tags,omitempty"`
	Media *Media   `json:"media,omitempty"`
}

// ProfileCount is the `_count` block of a profile
type ProfileCount struct {
	Posts     int `json:"posts"`
	Followers int `json:"followers"`
	Following int `json:"following"`
}

// Profile is a transient copy of a remote profile
type Profile struct {
	Name      string        `json:"name"`
	Email     string        `json:"email,omitempty"`
	Bio       string        `json:"bio,omitempty"`
	Avatar    *Media        `json:"avatar,omitempty"`
	Banner    *Media        `json:"banner,omitempty"`
	Posts     []Post        `json:"posts,omitempty"`
	Followers []Author      `json:"followers,omitempty"`
	Following []Author      `json:"following,omitempty"`
	Count     *ProfileCount `json:"_count,omitempty"`
}

// ProfileUpdate is the body of a profile update; nil fields are left unchanged
type ProfileUpdate struct {
	Bio    *string `json:"bio,omitempty"`
	Avatar *Media  `json:"avatar,omitempty"`
	Banner *Media  `json:"banner,omitempty"`
}

// FollowResult is returned by follow and unfollow
type FollowResult struct {
	Followers []Author `json:"followers"`
	Following []Author `json:"following"`
}

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
	Avatar   *Media `json:"avatar,omitempty"`
}

// LoginResult is the identity returned by POST /auth/login
type LoginResult struct {
	AccessToken string `json:"accessToken"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Bio         string `json:"bio,omitempty"`
	Avatar      *Media `json:"avatar,omitempty"`
	Banner      *Media `json:"banner,omitempty"`
}

// APIKey is returned by POST /auth/create-api-key
type APIKey struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Key    string `json:"key"`
}
