package userRepo

import (
	"sync"

	"hirafic/models"
)

// MemoryUserRepo is a mutex-guarded in-memory UserRepository, used by
// unit tests and local development without a MongoDB instance.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]models.User)}
}

func (r *MemoryUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepo) find(match func(models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if match(u) {
			copy := u
			return &copy, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepo) GetByID(id string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r *MemoryUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *MemoryUserRepo) GetByUsername(username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username })
}

func (r *MemoryUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return ErrNotFound
	}
	r.users[user.ID] = *user
	return nil
}
