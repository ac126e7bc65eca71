package domain

import (
	"time"
)

// Office es un consultorio físico de la clínica. Datos de referencia
// administrados por el admin.
type Office struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Capacity  int       `json:"capacity"`
	Equipment []string  `json:"equipment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateOfficeDTO struct {
	Name      string   `json:"name" binding:"required"`
	Specialty string   `json:"specialty" binding:"required"`
	Capacity  int      `json:"capacity" binding:"required,min=1"`
	Equipment []string `json:"equipment"`
}

type UpdateOfficeDTO struct {
	Name      *string   `json:"name"`
	Specialty *string   `json:"specialty"`
	Capacity  *int      `json:"capacity" binding:"omitempty,min=1"`
	Equipment *[]string `json:"equipment"`
}
