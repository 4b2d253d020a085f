package signup

import (
	"errors"
	"log"
	"strings"
)

const (
	MessageRequired = "Name and email are required"
	MessageThanks   = "Thank you for signing up to our newsletter!"
)

var ErrMissingFields = errors.New(MessageRequired)

// Request is a newsletter signup. Nothing is stored.
type Request struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
}

// Response is the JSON body returned for every signup attempt.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Validate requires a non-blank name and email.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" {
		return ErrMissingFields
	}
	return nil
}

// Submit validates the request and logs it.
func Submit(r Request) (Response, error) {
	if err := r.Validate(); err != nil {
		return Response{Success: false, Message: MessageRequired}, err
	}
	log.Printf("[signup] received: %s <%s>", strings.TrimSpace(r.Name), strings.TrimSpace(r.Email))
	return Response{Success: true, Message: MessageThanks}, nil
}
