package get_available_slots

import (
	"fmt"
	"strings"
)

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainer_id must be positive, got %d", ErrInvalidInput, req.TrainerID)
	}

	if strings.TrimSpace(req.ClassType) == "" {
		return fmt.Errorf("%w: class_type is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
