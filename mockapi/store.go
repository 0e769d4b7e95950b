package mockapi

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-social-client/gateway"
)

// apiKeyStore holds the issued API keys and their owners
type apiKeyStore struct {
	lock sync.RWMutex
	keys map[string]string // key to profile name
}

func newAPIKeyStore() *apiKeyStore {
	return &apiKeyStore{keys: make(map[string]string)}
}

func (s *apiKeyStore) Create(owner string) string {
	s.lock.Lock()
	defer s.lock.Unlock()

	key := uuid.New().String()
	s.keys[key] = owner
	return key
}

func (s *apiKeyStore) Valid(key string) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	_, ok := s.keys[key]
	return ok
}

// Revoke invalidates a key independently of the access token
func (s *apiKeyStore) Revoke(key string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.keys, key)
}

// post is a stored post; Owner is the author's profile name
type post struct {
	ID        int
	Title     string
	Body      string
	Tags      []string
	Media     *gateway.Media
	Owner     string
	Created   time.Time
	Updated   time.Time
	Comments  []gateway.Comment
	Reactions []gateway.Reaction
}

// postStore keeps posts in memory with increasing ids
type postStore struct {
	lock   sync.RWMutex
	posts  map[int]*post
	nextID int
	now    func() time.Time
}

func newPostStore(now func() time.Time) *postStore {
	return &postStore{posts: make(map[int]*post), nextID: 1, now: now}
}

func (s *postStore) Create(owner string, in gateway.PostInput) post {
	s.lock.Lock()
	defer s.lock.Unlock()

	now := s.now()
	p := &post{
		ID:      s.nextID,
		Title:   in.Title,
		Body:    in.Body,
		Tags:    in.Tags,
		Media:   in.Media,
		Owner:   owner,
		Created: now,
		Updated: now,
	}
	s.posts[p.ID] = p
	s.nextID++
	return *p
}

func (s *postStore) Get(id int) (post, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return post{}, false
	}
	return *p, true
}

func (s *postStore) Update(id int, in gateway.PostInput) (post, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return post{}, false
	}
	p.Title = in.Title
	p.Body = in.Body
	p.Tags = in.Tags
	if in.Media != nil {
		p.Media = in.Media
	}
	p.Updated = s.now()
	return *p, true
}

func (s *postStore) Delete(id int) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.posts[id]; !ok {
		return false
	}
	delete(s.posts, id)
	return true
}

// List returns the posts matching filter, newest first
func (s *postStore) List(filter func(post) bool) []post {
	s.lock.RLock()
	defer s.lock.RUnlock()

	out := make([]post, 0, len(s.posts))
	for _, p := range s.posts {
		if filter == nil || filter(*p) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID > out[j].ID
	})
	return out
}

// page slices items for a 1-based page. A non-positive limit returns everything.
func page[T any](items []T, limit, pageNum int) []T {
	if limit <= 0 {
		return items
	}
	if pageNum < 1 {
		pageNum = 1
	}
	start := (pageNum - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
