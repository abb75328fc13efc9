package weather

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/canchalibre/match-engine/internal/domain"
)

var validate = validator.New()

// ValidateHour range-checks a provider-supplied forecast hour.
func ValidateHour(h domain.ForecastHour) error {
	if err := validate.Struct(h); err != nil {
		return fmt.Errorf("invalid forecast hour at %s: %w", h.Instant, err)
	}
	return nil
}

// FilterValid drops out-of-range hours and reports how many were rejected.
// A bad record never aborts the rest of the batch.
func FilterValid(hours []domain.ForecastHour) ([]domain.ForecastHour, int) {
	valid := make([]domain.ForecastHour, 0, len(hours))
	rejected := 0
	for _, h := range hours {
		if err := ValidateHour(h); err != nil {
			rejected++
			continue
		}
		valid = append(valid, h)
	}
	return valid, rejected
}
