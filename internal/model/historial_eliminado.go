package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HistorialEliminado is the append-only deletion log. One row is written per
// successful delete, inside the same transaction, holding a JSON snapshot of
// the record as it existed just before removal. Rows are never updated.
type HistorialEliminado struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	// Tabla is the affected table name (usuarios, productos, …).
	Tabla      string         `gorm:"type:varchar(50);not null;index"`
	RegistroID uuid.UUID      `gorm:"type:uuid;not null"`
	Datos      datatypes.JSON `gorm:"not null"`

	EliminadoEn time.Time `gorm:"column:eliminado_en;autoCreateTime;index"`
}

func (HistorialEliminado) TableName() string { return "historial_eliminados" }

func (h *HistorialEliminado) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
