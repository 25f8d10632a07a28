package dto

import "time"

// DTOs tipados para as leituras de agenda. As consultas do núcleo nunca
// devolvem registros fracamente tipados para fora do gateway.

type ProfessionalDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AgendaAppointmentDTO struct {
	ID             string    `json:"id"`
	ProfessionalID string    `json:"professional_id"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Status         string    `json:"status"`
	CustomerName   string    `json:"customer_name"`
	ServiceName    string    `json:"service_name"`
	CategoryName   string    `json:"category_name"`
	ColorCode      string    `json:"color_code,omitempty"`
}

type AgendaBlockoutDTO struct {
	ID             string    `json:"id"`
	ProfessionalID string    `json:"professional_id"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Reason         string    `json:"reason"`
}

type SalonAgendaDTO struct {
	Professionals []ProfessionalDTO      `json:"professionals"`
	Appointments  []AgendaAppointmentDTO `json:"appointments"`
	Blockouts     []AgendaBlockoutDTO    `json:"blockouts"`
}

type CalendarEventDTO struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	ProfessionalID   string    `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Type             string    `json:"type"`
	ColorCode        string    `json:"color_code,omitempty"`
}

type MonthAgendaDTO struct {
	Professionals []ProfessionalDTO  `json:"professionals"`
	Events        []CalendarEventDTO `json:"events"`
}

type ProfessionalAppointmentDTO struct {
	ID              string    `json:"id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Status          string    `json:"status"`
	CustomerID      string    `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	ServiceID       string    `json:"service_id"`
	ServiceName     string    `json:"service_name"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
}
