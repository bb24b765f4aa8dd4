package models

import "time"

type Consulta struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Data     string `gorm:"size:10;not null" json:"data"`
	Horario  string `gorm:"size:5;not null" json:"horario"`
	Paciente string `gorm:"size:255;not null" json:"paciente"`
	Medico   string `gorm:"size:255;not null" json:"medico"`

	Status string `gorm:"size:20;not null;default:'scheduled'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Consulta) TableName() string {
	return "consultas"
}
