package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente is a buyer. It may optionally be linked to a Usuario account.
type Cliente struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre string    `gorm:"not null"`
	Cedula string    `gorm:"uniqueIndex;not null"`

	TipoCliente      *string `gorm:"type:varchar(20)"` // mayorista / minorista
	ClienteFrecuente bool    `gorm:"not null;default:false"`

	UsuarioID *uuid.UUID `gorm:"type:uuid;index"`

	CreadoEn time.Time `gorm:"column:creado_en;autoCreateTime"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (Cliente) TableName() string { return "clientes" }

func (c *Cliente) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Cliente) Snapshot() map[string]any {
	var usuarioID *string
	if c.UsuarioID != nil {
		s := c.UsuarioID.String()
		usuarioID = &s
	}
	return map[string]any{
		"id":                c.ID.String(),
		"nombre":            c.Nombre,
		"cedula":            c.Cedula,
		"tipo_cliente":      c.TipoCliente,
		"cliente_frecuente": c.ClienteFrecuente,
		"usuario_id":        usuarioID,
		"creado_en":         c.CreadoEn.Format(time.RFC3339),
	}
}
