package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/LRB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Формат диапазона времени проверяется отдельно при разборе метки слота
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TimeRange) == "" {
		return fmt.Errorf("%w: time range is required", ErrInvalidInput)
	}

	if err := validatePerson(req.Applicant.Name, req.Applicant.StudentID); err != nil {
		return fmt.Errorf("applicant: %w", err)
	}

	if len(req.Applicant.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: applicant email is too long", ErrInvalidInput)
	}

	if len(req.Applicant.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: applicant phone is too long", ErrInvalidInput)
	}

	if len(req.Members) > domain.MaxGroupMembers {
		return fmt.Errorf("%w: at most %d group members allowed", ErrInvalidInput, domain.MaxGroupMembers)
	}

	for i, m := range req.Members {
		if err := validatePerson(m.Name, m.StudentID); err != nil {
			return fmt.Errorf("member %d: %w", i+1, err)
		}
	}

	return nil
}

// validatePerson проверяет имя и номер студенческого билета
func validatePerson(name, studentID string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if strings.TrimSpace(studentID) == "" {
		return fmt.Errorf("%w: student id is required", ErrInvalidInput)
	}
	if len(studentID) > domain.MaxStudentIDLength {
		return fmt.Errorf("%w: student id is too long", ErrInvalidInput)
	}
	return nil
}
