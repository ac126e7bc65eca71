package domain

import (
	"time"
)

// Doctor es el perfil profesional asociado a un usuario con rol doctor.
// Los horarios nominales (SlotLabels) son descriptivos; la disponibilidad
// real la determinan las asignaciones de consultorio.
type Doctor struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	FullName      string    `json:"fullName,omitempty"`
	Specialty     string    `json:"specialty"`
	LicenseNumber string    `json:"licenseNumber"`
	SlotLabels    []string  `json:"slotLabels"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateDoctorDTO struct {
	Specialty     string   `json:"specialty" binding:"required"`
	LicenseNumber string   `json:"licenseNumber" binding:"required"`
	SlotLabels    []string `json:"slotLabels"`
}

type UpdateDoctorDTO struct {
	Specialty     *string   `json:"specialty"`
	LicenseNumber *string   `json:"licenseNumber"`
	SlotLabels    *[]string `json:"slotLabels"`
}
