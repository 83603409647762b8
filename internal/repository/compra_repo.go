package repository

import (
	"context"

	"mundiclass/internal/dto"
	"mundiclass/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompraRepository interface {
	// CrearTx inserts the purchase inside the caller's transaction so that
	// the stock decrement and the insert commit or roll back together.
	CrearTx(tx *gorm.DB, c *model.Compra) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Compra, error)
	Listar(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, error)
	EliminarTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) CrearTx(tx *gorm.DB, c *model.Compra) error {
	return tx.Create(c).Error
}

func (r *compraRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Producto").
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compraRepo) Listar(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, error) {
	q := r.db.WithContext(ctx).Model(&model.Compra{}).
		Preload("Cliente").Preload("Producto")

	if filter.ClienteID != "" {
		q = q.Where("compras.cliente_id = ?", filter.ClienteID)
	}
	if filter.ProductoID != "" {
		q = q.Where("compras.producto_id = ?", filter.ProductoID)
	}
	if filter.MinTotal != nil {
		q = q.Where("compras.total >= ?", *filter.MinTotal)
	}
	if filter.MaxTotal != nil {
		q = q.Where("compras.total <= ?", *filter.MaxTotal)
	}
	if filter.FechaDesde != "" {
		q = q.Where("compras.fecha >= ?", filter.FechaDesde)
	}
	if filter.FechaHasta != "" {
		q = q.Where("compras.fecha <= ?", filter.FechaHasta)
	}
	if filter.NombreCliente != "" {
		q = q.Joins("JOIN clientes ON clientes.id = compras.cliente_id").
			Where("lower(clientes.nombre) LIKE ?", contiene(filter.NombreCliente))
	}
	if filter.NombreProducto != "" {
		q = q.Joins("JOIN productos ON productos.id = compras.producto_id").
			Where("lower(productos.nombre) LIKE ?", contiene(filter.NombreProducto))
	}

	var compras []model.Compra
	err := q.Order("compras.fecha desc").Find(&compras).Error
	return compras, err
}

func (r *compraRepo) EliminarTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Compra{}, "id = ?", id).Error
}

func (r *compraRepo) DB() *gorm.DB { return r.db }
