package dto

import (
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aura-platform/contact-api/app/entity"
)

// emailPattern accepts exactly the grammar the form contract promises: one @,
// no whitespace, and a dotted segment after the @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError carries the user-facing Spanish description for a rejected
// submission.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NewMissingFieldsError builds the rejection for absent required fields.
// Fields must already be in declared order.
func NewMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{Reason: "Campos requeridos faltantes: " + strings.Join(fields, ", ")}
}

// NewInvalidEmailError builds the rejection for a malformed email address.
func NewInvalidEmailError() *ValidationError {
	return &ValidationError{Reason: "Formato de email inválido"}
}

type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
	Urgency  string `json:"urgency"`
	Message  string `json:"message"`
}

// FromEchoContext binds and normalizes a contact request from Echo.
func FromEchoContext(ctx echo.Context) (ContactRequest, error) {
	var req ContactRequest
	if err := ctx.Bind(&req); err != nil {
		return ContactRequest{}, err
	}
	req.normalize()
	return req, nil
}

// Validate checks required-field presence and email syntax. The returned
// error, when non-nil, is always a *ValidationError.
func (r *ContactRequest) Validate() *ValidationError {
	var missing []string
	for _, field := range entity.RequiredFields {
		if r.field(field) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return NewMissingFieldsError(missing)
	}
	if !emailPattern.MatchString(r.Email) {
		return NewInvalidEmailError()
	}
	return nil
}

// Submission converts the validated request into the domain value.
func (r *ContactRequest) Submission() entity.Submission {
	return entity.Submission{
		Name:     r.Name,
		Email:    r.Email,
		Company:  r.Company,
		Phone:    r.Phone,
		Category: r.Category,
		Urgency:  r.Urgency,
		Message:  r.Message,
	}
}

func (r *ContactRequest) field(name string) string {
	switch name {
	case "name":
		return r.Name
	case "email":
		return r.Email
	case "company":
		return r.Company
	case "category":
		return r.Category
	case "urgency":
		return r.Urgency
	case "message":
		return r.Message
	}
	return ""
}

// normalize trims surrounding whitespace from all fields. The message keeps
// its inner line breaks.
func (r *ContactRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Company = strings.TrimSpace(r.Company)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Category = strings.TrimSpace(r.Category)
	r.Urgency = strings.TrimSpace(r.Urgency)
	r.Message = strings.TrimSpace(r.Message)
}
