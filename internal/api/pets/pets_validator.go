package pets

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern keys accepted by ValidateField. Each field has exactly one
// recognized pattern; mutation payloads use the stricter variants.
const (
	PatternPetID        = "petID"        // letter followed by 6 digits
	PatternPetIDNumeric = "petIDNumeric" // bare 6 digits (test domain, mutations)
	PatternName         = "name"
	PatternBreed        = "breed"
	PatternLocation     = "location"
	PatternPhoneNumber  = "phoneNumber"
	PatternEmail        = "email"
	PatternAgeRange     = "ageRange" // 1-99, no leading zero (mutations only)
	PatternType         = "type"     // must contain "cat" or "dog"
)

// ValidationError carries the human-readable reason a field was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type fieldRule struct {
	pattern *regexp.Regexp
	reason  string
}

// All patterns are anchored: a value passes only on a full-string match.
var fieldRules = map[string]fieldRule{
	PatternPetID:        {regexp.MustCompile(`^[a-zA-Z][0-9]{6}$`), "PetID must start with a letter followed by a 6-digit number"},
	PatternPetIDNumeric: {regexp.MustCompile(`^[0-9]{6}$`), "PetID must be a 6-digit number"},
	PatternName:         {regexp.MustCompile(`^[a-zA-Z0-9 ]+$`), "Name must be alphanumeric"},
	PatternBreed:        {regexp.MustCompile(`^[a-zA-Z0-9 ]+$`), "Breed must be alphanumeric"},
	PatternLocation:     {regexp.MustCompile(`^[a-zA-Z0-9 ]+$`), "Location must be alphanumeric"},
	PatternPhoneNumber:  {regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`), "PhoneNumber must be in the format (XXX) XXX-XXXX"},
	PatternEmail:        {regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`), "Invalid email format"},
	PatternAgeRange:     {regexp.MustCompile(`^[1-9][0-9]?$`), "Age must be between 1 and 99"},
}

const typeReason = "Name must contain the word 'Cat' or 'Dog' (case-insensitive)"

// ValidateField applies the single recognized pattern for field to value.
// A nil return means the value passed. Asking for an unregistered field is
// a programming error, not a runtime case.
func ValidateField(field, value string) error {
	if field == PatternType {
		lowered := strings.ToLower(value)
		if strings.Contains(lowered, "cat") || strings.Contains(lowered, "dog") {
			return nil
		}
		return &ValidationError{Field: field, Reason: typeReason}
	}

	rule, ok := fieldRules[field]
	if !ok {
		panic(fmt.Sprintf("pets: no validation rule registered for field %q", field))
	}
	if !rule.pattern.MatchString(value) {
		return &ValidationError{Field: field, Reason: rule.reason}
	}
	return nil
}
