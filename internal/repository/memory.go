package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"pet-care-api/internal/model"
)

// In-memory implementations of the three stores. They back the same
// ownership contract as the Postgres repositories, which keeps the
// service layer storage-agnostic and the contract testable without a
// database.

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: map[string]model.User{}}
}

func (r *MemoryUserRepository) Create(_ context.Context, u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return model.ErrUsernameTaken
		}
		if strings.EqualFold(existing.Email, u.Email) {
			return model.ErrEmailTaken
		}
	}

	r.users[u.ID] = u
	return nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (r *MemoryUserRepository) FindByIdentifier(_ context.Context, identifier string) (model.User, error) {
	identifier = strings.TrimSpace(identifier)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Username, identifier) || strings.EqualFold(u.Email, identifier) {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (r *MemoryUserRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Username, strings.TrimSpace(username)) {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			return true, nil
		}
	}
	return false, nil
}

type MemoryPetRepository struct {
	mu   sync.RWMutex
	pets map[string]model.Pet
}

func NewMemoryPetRepository() *MemoryPetRepository {
	return &MemoryPetRepository{pets: map[string]model.Pet{}}
}

func (r *MemoryPetRepository) Create(_ context.Context, pet model.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pets[pet.ID] = pet
	return nil
}

func (r *MemoryPetRepository) ListByOwner(_ context.Context, ownerID string) ([]model.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pets := make([]model.Pet, 0)
	for _, pet := range r.pets {
		if pet.OwnerID == ownerID {
			pets = append(pets, pet)
		}
	}
	sort.Slice(pets, func(i, j int) bool {
		return pets[i].CreatedAt.After(pets[j].CreatedAt)
	})
	return pets, nil
}

func (r *MemoryPetRepository) GetByIDForOwner(_ context.Context, ownerID string, petID string) (model.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pet, ok := r.pets[petID]
	if !ok || pet.OwnerID != ownerID {
		return model.Pet{}, model.ErrPetNotFound
	}
	return pet, nil
}

func (r *MemoryPetRepository) UpdateForOwner(_ context.Context, ownerID string, pet model.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.pets[pet.ID]
	if !ok || existing.OwnerID != ownerID {
		return model.ErrPetNotFound
	}
	pet.OwnerID = existing.OwnerID
	pet.CreatedAt = existing.CreatedAt
	r.pets[pet.ID] = pet
	return nil
}

func (r *MemoryPetRepository) DeleteForOwner(_ context.Context, ownerID string, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pet, ok := r.pets[petID]
	if !ok || pet.OwnerID != ownerID {
		return model.ErrPetNotFound
	}
	delete(r.pets, petID)
	return nil
}

type MemoryRecordRepository struct {
	mu      sync.RWMutex
	records map[string]model.ServiceRecord
}

func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{records: map[string]model.ServiceRecord{}}
}

func (r *MemoryRecordRepository) Create(_ context.Context, record model.ServiceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return nil
}

func (r *MemoryRecordRepository) ListByOwner(_ context.Context, ownerID string, kind model.RecordKind, limit int) ([]model.ServiceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]model.ServiceRecord, 0)
	for _, rec := range r.records {
		if rec.OwnerID == ownerID && rec.Kind == kind {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (r *MemoryRecordRepository) GetByIDForOwner(_ context.Context, ownerID string, kind model.RecordKind, recordID string) (model.ServiceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[recordID]
	if !ok || rec.OwnerID != ownerID || rec.Kind != kind {
		return model.ServiceRecord{}, model.ErrRecordNotFound
	}
	return rec, nil
}

func (r *MemoryRecordRepository) UpdateForOwner(_ context.Context, ownerID string, record model.ServiceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.records[record.ID]
	if !ok || existing.OwnerID != ownerID || existing.Kind != record.Kind {
		return model.ErrRecordNotFound
	}
	record.OwnerID = existing.OwnerID
	record.CreatedAt = existing.CreatedAt
	r.records[record.ID] = record
	return nil
}

func (r *MemoryRecordRepository) DeleteForOwner(_ context.Context, ownerID string, kind model.RecordKind, recordID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[recordID]
	if !ok || rec.OwnerID != ownerID || rec.Kind != kind {
		return model.ErrRecordNotFound
	}
	delete(r.records, recordID)
	return nil
}
