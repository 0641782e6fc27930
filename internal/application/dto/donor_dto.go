package dto

import "time"

// CreateDonorRequest entrada para registrar un donador.
type CreateDonorRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Type          string `json:"type" validate:"required,oneof=persona empresa institucion"`
	ContactPerson string `json:"contact_person" validate:"max=200"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone" validate:"max=30"`
	Address       string `json:"address" validate:"max=300"`
}

// UpdateDonorRequest entrada para actualizar un donador.
type UpdateDonorRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	Type          *string `json:"type" validate:"omitempty,oneof=persona empresa institucion"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,max=200"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,max=30"`
	Address       *string `json:"address" validate:"omitempty,max=300"`
	Active        *bool   `json:"active"`
}

// DonorResponse salida de un donador.
type DonorResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}
