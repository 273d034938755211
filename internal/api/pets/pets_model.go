package pets

import "fmt"

// Species tags one record table. Cat and Dog tables are structurally
// identical and never queried jointly.
type Species string

const (
	SpeciesCat Species = "Cat"
	SpeciesDog Species = "Dog"
)

// Plural is used in response keys and not-found messages ("Cats", "Dogs").
func (s Species) Plural() string {
	return string(s) + "s"
}

// PetRecord is one directory entry. JSON field names follow the public API
// contract exactly.
type PetRecord struct {
	PetID       string `json:"PetID"`
	Name        string `json:"Name"`
	Breed       string `json:"Breed"`
	Age         int    `json:"Age"`
	Location    string `json:"Location"`
	PhoneNumber string `json:"PhoneNumber"`
	Email       string `json:"Email"`
}

// Field names a queryable record attribute.
type Field string

const (
	FieldPetID    Field = "petID"
	FieldName     Field = "name"
	FieldBreed    Field = "breed"
	FieldAge      Field = "age"
	FieldLocation Field = "location"
)

// NoMatchesError signals a well-formed query that matched zero records.
// It is not a validation error; handlers surface it as 404.
type NoMatchesError struct {
	Message string
}

func (e *NoMatchesError) Error() string {
	return e.Message
}

func newNoMatchesError(species Species, field Field, value string) *NoMatchesError {
	var msg string
	switch field {
	case FieldPetID:
		msg = fmt.Sprintf("No %s found with the ID '%s'.", species.Plural(), value)
	case FieldName:
		msg = fmt.Sprintf("No %s found with the name '%s'.", species.Plural(), value)
	case FieldBreed:
		msg = fmt.Sprintf("No %s found with the breed '%s'.", species.Plural(), value)
	case FieldAge:
		msg = fmt.Sprintf("No %s found with the age '%s'.", species.Plural(), value)
	case FieldLocation:
		msg = fmt.Sprintf("No %s found at the location '%s'.", species.Plural(), value)
	default:
		msg = fmt.Sprintf("No %s found.", species.Plural())
	}
	return &NoMatchesError{Message: msg}
}

func newEmptyTableError(species Species) *NoMatchesError {
	return &NoMatchesError{Message: fmt.Sprintf("No %s found in the dictionary.", species.Plural())}
}
