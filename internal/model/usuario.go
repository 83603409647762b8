package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Usuario stores system accounts with commercial data attached.
// Rol: "administrador" | "cliente"
type Usuario struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre string    `gorm:"not null"`
	Correo string    `gorm:"uniqueIndex;not null"`
	// Contrasena holds the bcrypt hash, never the plaintext.
	Contrasena string `gorm:"not null"`
	Rol        string `gorm:"type:varchar(50);not null"`

	// Datos comerciales
	Cedula           string  `gorm:"uniqueIndex;not null"`
	Tipo             *string `gorm:"type:varchar(20)"` // mayorista / minorista
	ClienteFrecuente bool    `gorm:"not null;default:false"`

	CreadoEn      time.Time `gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `gorm:"column:actualizado_en;autoUpdateTime"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Usuario) TableName() string { return "usuarios" }

func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Snapshot captures every audited field for the deletion log.
// The password hash is deliberately left out.
func (u *Usuario) Snapshot() map[string]any {
	return map[string]any{
		"id":                u.ID.String(),
		"nombre":            u.Nombre,
		"correo":            u.Correo,
		"rol":               u.Rol,
		"cedula":            u.Cedula,
		"tipo":              u.Tipo,
		"cliente_frecuente": u.ClienteFrecuente,
		"creado_en":         u.CreadoEn.Format(time.RFC3339),
		"actualizado_en":    u.ActualizadoEn.Format(time.RFC3339),
	}
}
