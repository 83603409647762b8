package repository_test

import (
	"context"
	"testing"
	"time"

	"mundiclass/internal/infra"
	"mundiclass/internal/model"
	"mundiclass/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))
	return db
}

func TestHistorialListarOrdenYFiltro(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewHistorialRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	viejo := &model.HistorialEliminado{
		Tabla:       "productos",
		RegistroID:  uuid.New(),
		Datos:       []byte(`{"nombre":"Lapiz"}`),
		EliminadoEn: base,
	}
	reciente := &model.HistorialEliminado{
		Tabla:       "usuarios",
		RegistroID:  uuid.New(),
		Datos:       []byte(`{"nombre":"Maria"}`),
		EliminadoEn: base.Add(time.Hour),
	}
	require.NoError(t, repo.CrearTx(db, viejo))
	require.NoError(t, repo.CrearTx(db, reciente))

	todas, err := repo.Listar(ctx, "")
	require.NoError(t, err)
	require.Len(t, todas, 2)
	// newest first
	assert.Equal(t, "usuarios", todas[0].Tabla)
	assert.Equal(t, "productos", todas[1].Tabla)

	soloProductos, err := repo.Listar(ctx, "productos")
	require.NoError(t, err)
	require.Len(t, soloProductos, 1)
	assert.Equal(t, viejo.RegistroID, soloProductos[0].RegistroID)
}

func TestDescontarStockCondicional(t *testing.T) {
	db := newTestDB(t)
	productos := repository.NewProductoRepository(db)

	p := &model.Producto{Nombre: "Cuaderno", Cantidad: 3}
	require.NoError(t, db.Create(p).Error)

	filas, err := productos.DescontarStockTx(db, p.ID, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, filas)

	// only 1 unit left, another decrement of 2 must touch no rows
	filas, err = productos.DescontarStockTx(db, p.ID, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 0, filas)

	var actual model.Producto
	require.NoError(t, db.First(&actual, "id = ?", p.ID).Error)
	assert.Equal(t, 1, actual.Cantidad)

	require.NoError(t, productos.RestaurarStockTx(db, p.ID, 2))
	require.NoError(t, db.First(&actual, "id = ?", p.ID).Error)
	assert.Equal(t, 3, actual.Cantidad)
}
