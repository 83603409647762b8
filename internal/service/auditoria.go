package service

import (
	"context"
	"encoding/json"

	"mundiclass/internal/model"
	"mundiclass/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// runTx executes fn inside a transaction bound to ctx.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

// registrarEliminado stages an audit row on the caller's transaction. The
// snapshot and the delete it documents commit or roll back together.
func registrarEliminado(tx *gorm.DB, historial repository.HistorialRepository, tabla string, registroID uuid.UUID, datos map[string]any) error {
	raw, err := json.Marshal(datos)
	if err != nil {
		return err
	}
	return historial.CrearTx(tx, &model.HistorialEliminado{
		Tabla:      tabla,
		RegistroID: registroID,
		Datos:      datatypes.JSON(raw),
	})
}
