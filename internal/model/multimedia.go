package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Multimedia is a polymorphic attachment: one row per uploaded file, keyed to
// the owning record through ModelType + ModelID rather than a hard FK.
type Multimedia struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	URL         string    `gorm:"not null"`
	MediaType   string    `gorm:"type:varchar(50);not null"` // image, video, audio, …
	Description *string

	// ModelType names the owning entity (Categoria, Producto, …);
	// ModelID is that record's primary key.
	ModelType string    `gorm:"type:varchar(50);not null;index:idx_multimedia_owner"`
	ModelID   uuid.UUID `gorm:"type:uuid;not null;index:idx_multimedia_owner"`

	CreadoEn      time.Time `gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `gorm:"column:actualizado_en;autoUpdateTime"`
}

func (Multimedia) TableName() string { return "multimedia" }

func (m *Multimedia) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
