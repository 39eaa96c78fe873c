package app

import (
	"sort"
	"sync"
	"time"
)

// ── Clock ─────────────────────────────────────────────────────────────────────

// Clock is a tiny injectable time source.
type Clock struct{}

func NewClock() *Clock { return &Clock{} }

func (c *Clock) Now() time.Time { return time.Now() }

// ── Users ─────────────────────────────────────────────────────────────────────

// User is the demo domain model.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserRepository is an in-memory user store, seeded with demo data.
type UserRepository struct {
	mu    sync.Mutex
	seq   int
	users map[int]User
}

func NewUserRepository() *UserRepository {
	r := &UserRepository{users: make(map[int]User)}
	r.Create("Alice", "alice@example.com")
	r.Create("Bob", "bob@example.com")
	return r
}

// All returns every user, ordered by id.
func (r *UserRepository) All() []User {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Find returns the user with the given id.
func (r *UserRepository) Find(id int) (User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	return u, ok
}

// Create stores a new user and returns it.
func (r *UserRepository) Create(name, email string) User {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	u := User{ID: r.seq, Name: name, Email: email}
	r.users[u.ID] = u
	return u
}

// Update replaces the stored user's fields, reporting whether it existed.
func (r *UserRepository) Update(id int, name, email string) (User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return User{}, false
	}
	u.Name, u.Email = name, email
	r.users[id] = u
	return u, true
}

// Delete removes a user, reporting whether it existed.
func (r *UserRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false
	}
	delete(r.users, id)
	return true
}
