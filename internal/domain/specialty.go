package domain

import (
	"time"
)

// Specialty es el catálogo de especialidades médicas que referencian
// doctores y consultorios.
type Specialty struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateSpecialtyDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateSpecialtyDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
