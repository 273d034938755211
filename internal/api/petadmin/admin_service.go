package petadmin

import (
	"log/slog"

	"github.com/petdirectory/demo-pet-api/internal/api/pets"
)

var _ Service = (*ServiceImpl)(nil)

// Service validates whole mutation payloads. Unlike lookup endpoints, every
// field is checked and all failing reasons are reported together.
type Service interface {
	ValidateSubmission(req SubmitRequest) []string
	ValidateUpdate(req UpdateRequest) []string
}

type ServiceImpl struct {
	logger *slog.Logger
}

func NewAdminService(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

func (s *ServiceImpl) ValidateSubmission(req SubmitRequest) []string {
	return collectReasons([]fieldCheck{
		{pets.PatternType, req.Type},
		{pets.PatternName, req.Name},
		{pets.PatternBreed, req.Breed},
		{pets.PatternAgeRange, req.Age},
		{pets.PatternLocation, req.Location},
		{pets.PatternPhoneNumber, req.PhoneNumber},
		{pets.PatternEmail, req.Email},
	})
}

func (s *ServiceImpl) ValidateUpdate(req UpdateRequest) []string {
	return collectReasons([]fieldCheck{
		{pets.PatternPetIDNumeric, req.PetID},
		{pets.PatternType, req.Type},
		{pets.PatternName, req.Name},
		{pets.PatternBreed, req.Breed},
		{pets.PatternAgeRange, req.Age},
		{pets.PatternLocation, req.Location},
		{pets.PatternPhoneNumber, req.PhoneNumber},
		{pets.PatternEmail, req.Email},
	})
}

type fieldCheck struct {
	pattern string
	value   string
}

// collectReasons keeps payload declaration order so failure lists are stable.
func collectReasons(checks []fieldCheck) []string {
	var reasons []string
	for _, c := range checks {
		if err := pets.ValidateField(c.pattern, c.value); err != nil {
			reasons = append(reasons, err.Error())
		}
	}
	return reasons
}
