package repository

import (
	"context"

	"mundiclass/internal/dto"
	"mundiclass/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductoRepository interface {
	Crear(ctx context.Context, p *model.Producto) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error)
	Actualizar(ctx context.Context, p *model.Producto) error
	ContarCompras(ctx context.Context, productoID uuid.UUID) (int64, error)
	EliminarTx(tx *gorm.DB, id uuid.UUID) error

	// DescontarStockTx decrements stock only when enough units remain.
	// Returns the number of rows affected: 0 means insufficient stock.
	DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) (int64, error)

	// RestaurarStockTx gives units back when a purchase is deleted.
	RestaurarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error

	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Crear(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Categoria").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error) {
	q := r.db.WithContext(ctx).Model(&model.Producto{}).Preload("Categoria")

	if filter.Nombre != "" {
		q = q.Where("lower(nombre) LIKE ?", contiene(filter.Nombre))
	}
	if filter.CategoriaID != "" {
		q = q.Where("categoria_id = ?", filter.CategoriaID)
	}
	if filter.PrecioMin != nil {
		q = q.Where("valor_unitario >= ?", *filter.PrecioMin)
	}
	if filter.PrecioMax != nil {
		q = q.Where("valor_unitario <= ?", *filter.PrecioMax)
	}
	if filter.StockMin != nil {
		q = q.Where("cantidad >= ?", *filter.StockMin)
	}
	if filter.StockMax != nil {
		q = q.Where("cantidad <= ?", *filter.StockMax)
	}

	var productos []model.Producto
	err := q.Order("nombre asc").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Actualizar(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) ContarCompras(ctx context.Context, productoID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Compra{}).
		Where("producto_id = ?", productoID).Count(&n).Error
	return n, err
}

func (r *productoRepo) EliminarTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Producto{}, "id = ?", id).Error
}

func (r *productoRepo) DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) (int64, error) {
	res := tx.Model(&model.Producto{}).
		Where("id = ? AND cantidad >= ?", id, cantidad).
		Update("cantidad", gorm.Expr("cantidad - ?", cantidad))
	return res.RowsAffected, res.Error
}

func (r *productoRepo) RestaurarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("cantidad", gorm.Expr("cantidad + ?", cantidad)).Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
