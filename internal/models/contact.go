package models

import "time"

// ContactStatusNew is the status assigned to every incoming contact message.
// Messages are write-only for this service; an external admin process moves
// them past "new".
const ContactStatusNew = "new"

// ContactMessage is a support submission stored in the contacts collection
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactRequest defines the request body for submitting a contact message
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}
