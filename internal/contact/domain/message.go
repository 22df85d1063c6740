package domain

import (
	"context"
	"errors"
	"time"
)

// ErrValidation signals a contact submission with a missing field.
var ErrValidation = errors.New("all contact fields are required")

// Message is an inquiry submitted through the contact form. Rows are
// append-only; the storefront never reads them back.
type Message struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(120);not null" json:"email"`
	Subject   string    `gorm:"column:subject;type:varchar(200);not null" json:"subject"`
	Body      string    `gorm:"column:message;type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (Message) TableName() string { return "contact_messages" }

type MessageRepository interface {
	Save(ctx context.Context, msg *Message) error
}
