package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pet-care-api/internal/model"
)

// PetRepository persists pet profiles. Every read and mutation is
// conjoined with the owner filter in the statement itself so a pet is
// never addressable by ID alone.
type PetRepository struct {
	pool *pgxpool.Pool
}

func NewPetRepository(pool *pgxpool.Pool) *PetRepository {
	return &PetRepository{pool: pool}
}

func (r *PetRepository) Create(ctx context.Context, pet model.Pet) error {
	history, err := json.Marshal(pet.MedicalHistory)
	if err != nil {
		return fmt.Errorf("marshal medical history: %w", err)
	}
	prefs, err := json.Marshal(pet.Preferences)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO pets (id, user_id, name, type, breed, age, weight, birth_date,
		                   gender, image_url, medical_history, preferences, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		pet.ID, pet.OwnerID, pet.Name, pet.Type, pet.Breed, pet.Age, pet.Weight, pet.BirthDate,
		pet.Gender, pet.ImageURL, history, prefs, pet.CreatedAt, pet.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create pet: %w", err)
	}
	return nil
}

func (r *PetRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Pet, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, type, breed, age, weight, birth_date,
		        gender, image_url, medical_history, preferences, created_at, updated_at
		 FROM pets
		 WHERE user_id = $1
		 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	pets := make([]model.Pet, 0)
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		pets = append(pets, pet)
	}
	return pets, rows.Err()
}

func (r *PetRepository) GetByIDForOwner(ctx context.Context, ownerID string, petID string) (model.Pet, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, type, breed, age, weight, birth_date,
		        gender, image_url, medical_history, preferences, created_at, updated_at
		 FROM pets
		 WHERE id = $1 AND user_id = $2`, petID, ownerID)

	pet, err := scanPet(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Pet{}, model.ErrPetNotFound
	}
	if err != nil {
		return model.Pet{}, err
	}
	return pet, nil
}

// UpdateForOwner writes the full profile back in one owner-filtered
// statement. Zero rows affected means absent or not owned.
func (r *PetRepository) UpdateForOwner(ctx context.Context, ownerID string, pet model.Pet) error {
	history, err := json.Marshal(pet.MedicalHistory)
	if err != nil {
		return fmt.Errorf("marshal medical history: %w", err)
	}
	prefs, err := json.Marshal(pet.Preferences)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE pets
		 SET name = $3, type = $4, breed = $5, age = $6, weight = $7, birth_date = $8,
		     gender = $9, image_url = $10, medical_history = $11, preferences = $12, updated_at = $13
		 WHERE id = $1 AND user_id = $2`,
		pet.ID, ownerID, pet.Name, pet.Type, pet.Breed, pet.Age, pet.Weight, pet.BirthDate,
		pet.Gender, pet.ImageURL, history, prefs, pet.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update pet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPetNotFound
	}
	return nil
}

func (r *PetRepository) DeleteForOwner(ctx context.Context, ownerID string, petID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM pets WHERE id = $1 AND user_id = $2`, petID, ownerID)
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPetNotFound
	}
	return nil
}

func scanPet(row pgx.Row) (model.Pet, error) {
	var pet model.Pet
	var history, prefs []byte

	err := row.Scan(&pet.ID, &pet.OwnerID, &pet.Name, &pet.Type, &pet.Breed,
		&pet.Age, &pet.Weight, &pet.BirthDate, &pet.Gender, &pet.ImageURL,
		&history, &prefs, &pet.CreatedAt, &pet.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Pet{}, err
		}
		return model.Pet{}, fmt.Errorf("scan pet: %w", err)
	}

	if len(history) > 0 {
		if err := json.Unmarshal(history, &pet.MedicalHistory); err != nil {
			return model.Pet{}, fmt.Errorf("unmarshal medical history: %w", err)
		}
	}
	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &pet.Preferences); err != nil {
			return model.Pet{}, fmt.Errorf("unmarshal preferences: %w", err)
		}
	}
	return pet, nil
}
