package validator

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	api "github.com/skillsprout/marketplace-service/internal/generated"
	"github.com/skillsprout/marketplace-service/internal/model"
)

const maxMessageLength = 2000

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(req.Content)) > maxMessageLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxMessageLength)
	}

	if req.Context != nil {
		if strings.TrimSpace(req.Context.Course) == "" {
			return fmt.Errorf("context course is required")
		}

		// Delimiter tokens are not escaped on the wire, so they must not
		// appear inside payload fields.
		for _, value := range []string{req.Context.Lesson, req.Context.Course, req.Context.Image} {
			if strings.Contains(value, "[/CONTEXT_CARD]") || strings.Contains(value, "[CONTEXT_CARD]") {
				return fmt.Errorf("context fields must not contain reserved delimiter tokens")
			}
		}
	}

	return nil
}

func (v *Validator) ValidateRequestAppointment(req *api.RequestAppointmentRequest) error {
	if _, err := uuid.Parse(req.TutorId); err != nil {
		return fmt.Errorf("tutor_id must be a valid UUID")
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return fmt.Errorf("scheduled_at must be a valid RFC3339 timestamp")
	}

	if !scheduledAt.After(time.Now()) {
		return fmt.Errorf("scheduled_at must be in the future")
	}

	return nil
}

func (v *Validator) ValidateCreateHobby(req *api.CreateHobbyRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}

	if strings.TrimSpace(req.Category) == "" {
		return fmt.Errorf("category is required")
	}

	if req.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}

	if req.Price1on1 < 0 {
		return fmt.Errorf("price_1on1 cannot be negative")
	}

	if req.Lessons != nil && *req.Lessons != "" {
		if !json.Valid([]byte(*req.Lessons)) {
			return fmt.Errorf("lessons must be valid JSON")
		}
	}

	return nil
}

func (v *Validator) ValidateEnroll(req *api.EnrollRequest) error {
	switch req.Plan {
	case model.PlanCourse, model.PlanCoaching:
		return nil
	default:
		return fmt.Errorf("plan '%s' is not supported", req.Plan)
	}
}

func (v *Validator) ValidateCreateReview(req *api.CreateReviewRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}

	if len([]rune(req.Comment)) > maxMessageLength {
		return fmt.Errorf("comment exceeds maximum length of %d characters", maxMessageLength)
	}

	return nil
}

func (v *Validator) ValidateUpdateProfile(req *api.UpdateProfileRequest) error {
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("full_name is required")
	}

	return nil
}

func (v *Validator) ValidateSubmitApplication(req *api.SubmitApplicationRequest) error {
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("full_name is required")
	}

	if strings.TrimSpace(req.Expertise) == "" {
		return fmt.Errorf("expertise is required")
	}

	return nil
}

func (v *Validator) ValidateUpload(req *api.UploadRequest) error {
	if strings.TrimSpace(req.FileName) == "" {
		return fmt.Errorf("file_name is required")
	}

	if strings.Contains(req.FileName, "..") || strings.Contains(req.FileName, "/") {
		return fmt.Errorf("file_name must not contain path separators")
	}

	if req.Data == "" {
		return fmt.Errorf("data is required")
	}

	return nil
}

func (v *Validator) ValidateAdminUpdateUser(req *api.AdminUpdateUserRequest) error {
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("full_name is required")
	}

	switch req.Role {
	case model.RoleStudent, model.RoleTutor:
		return nil
	default:
		return fmt.Errorf("role '%s' is not supported", req.Role)
	}
}

func (v *Validator) ValidateHobbyStatus(status string) error {
	switch status {
	case model.HobbyStatusApproved, model.HobbyStatusRejected:
		return nil
	default:
		return fmt.Errorf("status '%s' is not supported", status)
	}
}
