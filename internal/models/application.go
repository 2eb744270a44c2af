package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Application statuses. Writes are not restricted to these values: the
// public API accepts whatever string the admin panel sends.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	InterviewNotScheduled = "not_scheduled"
	InterviewScheduled    = "scheduled"
	InterviewCompleted    = "completed"
)

// Application is a membership application row. Multi-valued fields
// (interests, skills) are kept in their canonical comma-joined form.
type Application struct {
	ID              int64  `db:"id" json:"id"`
	Name            string `db:"name" json:"name"`
	StudentID       string `db:"student_id" json:"student_id"`
	Email           string `db:"email" json:"email"`
	Phone           string `db:"phone" json:"phone"`
	Major           string `db:"major" json:"major"`
	Grade           string `db:"grade" json:"grade"`
	Position        string `db:"position" json:"position"`
	Interests       string `db:"interests" json:"interests"`
	Skills          string `db:"skills" json:"skills"`
	TeamPreference  string `db:"team_preference" json:"team_preference"`
	Experience      string `db:"experience" json:"experience"`
	Reason          string `db:"reason" json:"reason"`
	AvailableTime   string `db:"available_time" json:"available_time"`
	GithubURL       string `db:"github_url" json:"github_url"`
	OtherInfo       string `db:"other_info" json:"other_info"`
	Status          string `db:"status" json:"status"`
	InterviewStatus string `db:"interview_status" json:"interview_status"`
	InterviewNotes  string `db:"interview_notes" json:"interview_notes"`
	CreatedAt       int64  `db:"created_at" json:"created_at"`
}

// StringList accepts a multi-valued JSON field either as an array of
// strings or as an already comma-joined string.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []string
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*s = items
		return nil
	}

	var joined string
	if err := json.Unmarshal(trimmed, &joined); err != nil {
		return err
	}
	*s = SplitJoined(joined)
	return nil
}

// Join renders the canonical comma-joined storage form.
func (s StringList) Join() string {
	return strings.Join(s, ",")
}

// SplitJoined splits a canonical comma-joined string back into a list.
// An empty string becomes an empty list, not [""].
func SplitJoined(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ",")
}

// ApplicationInput is the intake shape of POST /api/apply.
type ApplicationInput struct {
	Name           string     `json:"name" validate:"required"`
	StudentID      string     `json:"student_id" validate:"required"`
	Email          string     `json:"email" validate:"required"`
	Phone          string     `json:"phone" validate:"required"`
	Major          string     `json:"major" validate:"required"`
	Position       string     `json:"position" validate:"required"`
	Grade          string     `json:"grade"`
	Interests      StringList `json:"interests"`
	Skills         StringList `json:"skills"`
	TeamPreference string     `json:"team_preference"`
	Experience     string     `json:"experience"`
	Reason         string     `json:"reason"`
	AvailableTime  string     `json:"available_time"`
	GithubURL      string     `json:"github_url"`
	OtherInfo      string     `json:"other_info"`
}

// MissingFieldError reports the first required field that is absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is a required field", e.Field)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the required fields and reports the first missing one
// by its JSON name.
func (in *ApplicationInput) Validate() error {
	return firstMissingField(validate.Struct(in))
}

func firstMissingField(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &MissingFieldError{Field: verrs[0].Field()}
	}
	return err
}

// ApplicationStatusPatch carries a partial triage update. Nil fields are
// left untouched.
type ApplicationStatusPatch struct {
	Status          *string `json:"status"`
	InterviewStatus *string `json:"interview_status"`
	InterviewNotes  *string `json:"interview_notes"`
}

func (p ApplicationStatusPatch) IsEmpty() bool {
	return p.Status == nil && p.InterviewStatus == nil && p.InterviewNotes == nil
}
