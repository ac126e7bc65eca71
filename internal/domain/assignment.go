package domain

import (
	"time"
)

// OfficeAssignment vincula un doctor a un consultorio durante un mes
// calendario, en un conjunto de días de la semana (0=domingo..6=sábado)
// con el mismo rango horario para cada día seleccionado.
type OfficeAssignment struct {
	ID         int64     `json:"id"`
	OfficeID   int64     `json:"officeId"`
	OfficeName string    `json:"officeName"`
	DoctorID   int64     `json:"doctorId"`
	DoctorName string    `json:"doctorName"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	WeekDays   []int     `json:"weekDays"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type AssignmentDTO struct {
	OfficeID   int64  `json:"officeId" binding:"required"`
	OfficeName string `json:"officeName"`
	DoctorID   int64  `json:"doctorId" binding:"required"`
	DoctorName string `json:"doctorName"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=2000"`
	WeekDays   []int  `json:"weekDays" binding:"required,min=1,dive,min=0,max=6"`
	StartTime  string `json:"startTime" binding:"required"`
	EndTime    string `json:"endTime" binding:"required"`
}

// Availability es el resultado de una verificación de disponibilidad.
// Cuando no está disponible, Conflicts trae las asignaciones completas
// que chocan, para que el llamador arme un mensaje descriptivo.
type Availability struct {
	Available bool               `json:"available"`
	Conflicts []OfficeAssignment `json:"conflicts,omitempty"`
}
