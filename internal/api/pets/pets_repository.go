package pets

import (
	"context"
	"strconv"
	"strings"
)

var _ Repository = (*MemoryRepository)(nil)

// Repository is the read-only record store for one species table.
type Repository interface {
	// FindBy filters the table on one field. Matching is exact for petID
	// and age, case-insensitive for name, breed and location. Zero matches
	// yields a *NoMatchesError, never an empty slice.
	FindBy(ctx context.Context, field Field, value string) ([]PetRecord, error)

	// ListAll returns every record in insertion order.
	ListAll(ctx context.Context) ([]PetRecord, error)

	Species() Species
}

// MemoryRepository holds the seeded table. It is never mutated after
// construction, so concurrent reads need no synchronization.
type MemoryRepository struct {
	species Species
	records []PetRecord
}

func NewMemoryRepository(species Species, seed []PetRecord) *MemoryRepository {
	records := make([]PetRecord, len(seed))
	copy(records, seed)
	return &MemoryRepository{
		species: species,
		records: records,
	}
}

func (r *MemoryRepository) Species() Species {
	return r.species
}

func (r *MemoryRepository) FindBy(_ context.Context, field Field, value string) ([]PetRecord, error) {
	var matches []PetRecord
	for _, rec := range r.records {
		if recordMatches(rec, field, value) {
			matches = append(matches, rec)
		}
	}
	if len(matches) == 0 {
		return nil, newNoMatchesError(r.species, field, value)
	}
	return matches, nil
}

func (r *MemoryRepository) ListAll(_ context.Context) ([]PetRecord, error) {
	if len(r.records) == 0 {
		return nil, newEmptyTableError(r.species)
	}
	out := make([]PetRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

func recordMatches(rec PetRecord, field Field, value string) bool {
	switch field {
	case FieldPetID:
		return rec.PetID == value
	case FieldName:
		return strings.EqualFold(rec.Name, value)
	case FieldBreed:
		return strings.EqualFold(rec.Breed, value)
	case FieldLocation:
		return strings.EqualFold(rec.Location, value)
	case FieldAge:
		age, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		return rec.Age == age
	default:
		return false
	}
}
