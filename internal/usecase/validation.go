package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/rowanvale/brandsite-api/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var contactTypes = map[string]bool{
	entity.ContactTypeGeneral:    true,
	entity.ContactTypeSpeaking:   true,
	entity.ContactTypeConsulting: true,
	entity.ContactTypeMedia:      true,
}

var interviewTypes = map[string]bool{
	"phone":     true,
	"video":     true,
	"in-person": true,
	"written":   true,
	"podcast":   true,
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func ValidateContactInput(input ContactInput) []ValidationError {
	var errors []ValidationError

	if !contactTypes[input.Type] {
		errors = append(errors, ValidationError{"type", "must be general, speaking, consulting or media"})
	}

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	switch input.Type {
	case entity.ContactTypeGeneral:
		if strings.TrimSpace(input.Message) == "" {
			errors = append(errors, ValidationError{"message", "is required"})
		}
	case entity.ContactTypeMedia:
		if strings.TrimSpace(input.LastName) == "" {
			errors = append(errors, ValidationError{"last_name", "is required"})
		}
		if strings.TrimSpace(input.Outlet) == "" {
			errors = append(errors, ValidationError{"outlet", "is required"})
		}
		if strings.TrimSpace(input.Role) == "" {
			errors = append(errors, ValidationError{"role", "is required"})
		}
		if strings.TrimSpace(input.Topic) == "" {
			errors = append(errors, ValidationError{"topic", "is required"})
		}
		if input.InterviewType == "" {
			errors = append(errors, ValidationError{"interview_type", "is required"})
		} else if !interviewTypes[input.InterviewType] {
			errors = append(errors, ValidationError{"interview_type", "must be phone, video, in-person, written or podcast"})
		}
	case entity.ContactTypeConsulting:
		if strings.TrimSpace(input.BudgetRange) == "" {
			errors = append(errors, ValidationError{"budget_range", "is required"})
		}
		if strings.TrimSpace(input.Timeline) == "" {
			errors = append(errors, ValidationError{"timeline", "is required"})
		}
	case entity.ContactTypeSpeaking:
		if strings.TrimSpace(input.EventName) == "" {
			errors = append(errors, ValidationError{"event_name", "is required"})
		}
	}

	return errors
}

func ValidateNewsletterInput(input NewsletterInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

func ValidateWaitlistInput(input WaitlistInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

func ValidateDownloadResourceInput(input DownloadResourceInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.ResourceSlug) == "" {
		errors = append(errors, ValidationError{"resource_slug", "is required"})
	}

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

// validationMessage flattens field errors into the short string returned to
// the browser.
func validationMessage(errors []ValidationError) string {
	parts := make([]string, 0, len(errors))
	for _, e := range errors {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
