package pets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantOK  bool
		wantMsg string
	}{
		{"PetIDValid", PatternPetID, "C895210", true, ""},
		{"PetIDLowercaseLetter", PatternPetID, "d895220", true, ""},
		{"PetIDMissingLetter", PatternPetID, "895210", false, "PetID must start with a letter followed by a 6-digit number"},
		{"PetIDTooManyDigits", PatternPetID, "C8952100", false, "PetID must start with a letter followed by a 6-digit number"},
		{"PetIDEmpty", PatternPetID, "", false, "PetID must start with a letter followed by a 6-digit number"},
		{"PetIDNumericValid", PatternPetIDNumeric, "895210", true, ""},
		{"PetIDNumericWithLetter", PatternPetIDNumeric, "C895210", false, "PetID must be a 6-digit number"},
		{"PetIDNumericShort", PatternPetIDNumeric, "12345", false, "PetID must be a 6-digit number"},
		{"NameValid", PatternName, "Mister Meanface", true, ""},
		{"NameWithDigits", PatternName, "Rex 2", true, ""},
		{"NameWithPunctuation", PatternName, "Fluffy!", false, "Name must be alphanumeric"},
		{"NameEmpty", PatternName, "", false, "Name must be alphanumeric"},
		{"BreedValid", PatternBreed, "Russian Blue", true, ""},
		{"BreedInvalid", PatternBreed, "Main-Coon", false, "Breed must be alphanumeric"},
		{"LocationValid", PatternLocation, "Paw Pad", true, ""},
		{"LocationInvalid", PatternLocation, "Paw@Pad", false, "Location must be alphanumeric"},
		{"PhoneValid", PatternPhoneNumber, "(111) 111-1111", true, ""},
		{"PhoneMissingParens", PatternPhoneNumber, "111 111-1111", false, "PhoneNumber must be in the format (XXX) XXX-XXXX"},
		{"PhoneNoSpace", PatternPhoneNumber, "(111)111-1111", false, "PhoneNumber must be in the format (XXX) XXX-XXXX"},
		{"EmailValid", PatternEmail, "info@pawpad.com", true, ""},
		{"EmailNoTLD", PatternEmail, "info@pawpad", false, "Invalid email format"},
		{"EmailNoAt", PatternEmail, "pawpad.com", false, "Invalid email format"},
		{"AgeMin", PatternAgeRange, "1", true, ""},
		{"AgeMax", PatternAgeRange, "99", true, ""},
		{"AgeZero", PatternAgeRange, "0", false, "Age must be between 1 and 99"},
		{"AgeLeadingZero", PatternAgeRange, "07", false, "Age must be between 1 and 99"},
		{"AgeThreeDigits", PatternAgeRange, "100", false, "Age must be between 1 and 99"},
		{"AgeNegative", PatternAgeRange, "-5", false, "Age must be between 1 and 99"},
		{"TypeCat", PatternType, "cat", true, ""},
		{"TypeDogMixedCase", PatternType, "DoG", true, ""},
		{"TypeEmbedded", PatternType, "my favorite CATTLE dog", true, ""},
		{"TypeGoldfish", PatternType, "goldfish", false, "Name must contain the word 'Cat' or 'Dog' (case-insensitive)"},
		{"TypeEmpty", PatternType, "", false, "Name must contain the word 'Cat' or 'Dog' (case-insensitive)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateField(tt.field, tt.value)
			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateFieldUnknownFieldPanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = ValidateField("favoriteToy", "ball")
	})
}
