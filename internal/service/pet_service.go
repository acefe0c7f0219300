package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pet-care-api/internal/model"
	"pet-care-api/pkg/apierror"
)

// PetStore is the ownership-scoped profile store. Every operation
// carries the owner and the implementations enforce the owner filter
// inside the mutation itself.
type PetStore interface {
	Create(ctx context.Context, pet model.Pet) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.Pet, error)
	GetByIDForOwner(ctx context.Context, ownerID string, petID string) (model.Pet, error)
	UpdateForOwner(ctx context.Context, ownerID string, pet model.Pet) error
	DeleteForOwner(ctx context.Context, ownerID string, petID string) error
}

type PetService struct {
	pets PetStore
}

func NewPetService(pets PetStore) *PetService {
	return &PetService{pets: pets}
}

func (s *PetService) Create(ctx context.Context, ownerID string, req model.CreatePetRequest) (model.Pet, error) {
	if err := validatePetFields(req.Name, req.Type, req.Gender, req.Age, req.Weight); err != nil {
		return model.Pet{}, err
	}

	now := time.Now().UTC()
	pet := model.Pet{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		Name:           req.Name,
		Type:           req.Type,
		Breed:          req.Breed,
		Age:            req.Age,
		Weight:         req.Weight,
		BirthDate:      req.BirthDate,
		Gender:         req.Gender,
		ImageURL:       req.ImageURL,
		MedicalHistory: req.MedicalHistory,
		Preferences:    req.Preferences,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.pets.Create(ctx, pet); err != nil {
		return model.Pet{}, fmt.Errorf("create pet: %w", err)
	}
	return pet, nil
}

func (s *PetService) List(ctx context.Context, ownerID string) ([]model.Pet, error) {
	return s.pets.ListByOwner(ctx, ownerID)
}

func (s *PetService) Get(ctx context.Context, ownerID string, petID string) (model.Pet, error) {
	return s.pets.GetByIDForOwner(ctx, ownerID, petID)
}

// Update applies a partial patch. The read builds the patched
// profile; the store's owner-filtered UPDATE re-checks ownership
// atomically so the write cannot cross owners.
func (s *PetService) Update(ctx context.Context, ownerID string, petID string, req model.UpdatePetRequest) (model.Pet, error) {
	pet, err := s.pets.GetByIDForOwner(ctx, ownerID, petID)
	if err != nil {
		return model.Pet{}, err
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Type != nil {
		pet.Type = *req.Type
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.Age != nil {
		pet.Age = req.Age
	}
	if req.Weight != nil {
		pet.Weight = req.Weight
	}
	if req.BirthDate != nil {
		pet.BirthDate = req.BirthDate
	}
	if req.Gender != nil {
		pet.Gender = *req.Gender
	}
	if req.ImageURL != nil {
		pet.ImageURL = *req.ImageURL
	}
	if req.MedicalHistory != nil {
		pet.MedicalHistory = req.MedicalHistory
	}
	if req.Preferences != nil {
		pet.Preferences = *req.Preferences
	}

	if err := validatePetFields(pet.Name, pet.Type, pet.Gender, pet.Age, pet.Weight); err != nil {
		return model.Pet{}, err
	}

	pet.UpdatedAt = time.Now().UTC()
	if err := s.pets.UpdateForOwner(ctx, ownerID, pet); err != nil {
		return model.Pet{}, err
	}
	return pet, nil
}

func (s *PetService) Delete(ctx context.Context, ownerID string, petID string) error {
	return s.pets.DeleteForOwner(ctx, ownerID, petID)
}

func validatePetFields(name string, petType string, gender string, age *float64, weight *float64) error {
	fields := make([]string, 0, 2)
	if name == "" {
		fields = append(fields, "name")
	}
	if petType == "" {
		fields = append(fields, "type")
	}
	if len(fields) > 0 {
		return apierror.Validation("pet name and type are required", fields...)
	}

	if !model.IsValidPetType(petType) {
		return apierror.Validation("unknown pet type", "type")
	}
	if gender != "" && !model.IsValidPetGender(gender) {
		return apierror.Validation("unknown gender", "gender")
	}
	if age != nil && *age < 0 {
		return apierror.Validation("age cannot be negative", "age")
	}
	if weight != nil && *weight < 0 {
		return apierror.Validation("weight cannot be negative", "weight")
	}

	return nil
}
