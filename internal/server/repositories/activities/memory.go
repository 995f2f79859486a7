package activities

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/testdash/internal/common"
	"github.com/dmitrijs2005/testdash/internal/server/models"
)

// MemoryRepository keeps activities in insertion order. IDs come from a
// monotonic counter and are never handed out twice, even after a delete.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  []models.Activity
	lastID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Seed appends records with their ids as given and moves the counter past
// the largest one. A seeded id that is already present replaces that record.
func (r *MemoryRepository) Seed(ctx context.Context, items []models.Activity) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range items {
		if i := r.indexOf(a.ID); i >= 0 {
			r.items[i] = a
		} else {
			r.items = append(r.items, a)
		}
		if a.ID > r.lastID {
			r.lastID = a.ID
		}
	}
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.items), nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Activity{}, common.ErrorNotFound
	}
	return r.items[i], nil
}

// Create ignores a.ID and assigns the next one.
func (r *MemoryRepository) Create(ctx context.Context, a models.Activity) (models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	a.ID = r.lastID
	r.items = append(r.items, a)
	return a, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, patch models.ActivityPatch) (models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Activity{}, common.ErrorNotFound
	}
	r.items[i] = patch.Apply(r.items[i])
	return r.items[i], nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return common.ErrorNotFound
	}
	r.items = slices.Delete(r.items, i, i+1)
	return nil
}

// indexOf must be called with r.mu held.
func (r *MemoryRepository) indexOf(id int64) int {
	return slices.IndexFunc(r.items, func(a models.Activity) bool { return a.ID == id })
}
