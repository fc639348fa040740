package entity

// RequiredFields lists the submission fields that must be present, in the
// order they are reported back when missing.
var RequiredFields = []string{"name", "email", "company", "category", "urgency", "message"}

// PhonePlaceholder is rendered whenever a submission carries no phone number.
const PhonePlaceholder = "No proporcionado"

// Submission is one validated contact-form entry. It lives for the duration
// of a single request and is never stored.
type Submission struct {
	Name     string
	Email    string
	Company  string
	Phone    string
	Category string
	Urgency  string
	Message  string
}

// PhoneOrPlaceholder returns the phone number or the display placeholder.
func (s Submission) PhoneOrPlaceholder() string {
	if s.Phone == "" {
		return PhonePlaceholder
	}
	return s.Phone
}
