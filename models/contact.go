package models

// ContactMessage is the contact form submission forwarded to the shop API
// and mirrored to the transactional mailer.
type ContactMessage struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}
