package models

// ContactMessage is a row from the website contact form.
type ContactMessage struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"contact_name" json:"contact-name"`
	Email     string `db:"contact_email" json:"contact-email"`
	Subject   string `db:"contact_subject" json:"contact-subject"`
	Message   string `db:"contact_message" json:"contact-message"`
	IsRead    bool   `db:"is_read" json:"is_read"`
	CreatedAt int64  `db:"created_at" json:"created_at"`
}

// ContactInput uses the hyphenated keys the website form posts.
type ContactInput struct {
	Name    string `json:"contact-name" validate:"required"`
	Email   string `json:"contact-email" validate:"required"`
	Subject string `json:"contact-subject" validate:"required"`
	Message string `json:"contact-message" validate:"required"`
}

func (in *ContactInput) Validate() error {
	return firstMissingField(validate.Struct(in))
}
