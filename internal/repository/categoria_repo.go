package repository

import (
	"context"

	"mundiclass/internal/dto"
	"mundiclass/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoriaRepository defines CRUD operations for Categoria.
type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	Listar(ctx context.Context, filter dto.CategoriaFilter) ([]model.Categoria, error)
	Actualizar(ctx context.Context, c *model.Categoria) error
	ContarProductos(ctx context.Context, categoriaID uuid.UUID) (int64, error)
	EliminarTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Crear(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) Listar(ctx context.Context, filter dto.CategoriaFilter) ([]model.Categoria, error) {
	q := r.db.WithContext(ctx).Model(&model.Categoria{})

	if filter.Nombre != "" {
		q = q.Where("lower(nombre) LIKE ?", contiene(filter.Nombre))
	}
	if filter.Codigo != "" {
		q = q.Where("lower(codigo) LIKE ?", contiene(filter.Codigo))
	}

	var categorias []model.Categoria
	err := q.Order("nombre asc").Find(&categorias).Error
	return categorias, err
}

func (r *categoriaRepo) Actualizar(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) ContarProductos(ctx context.Context, categoriaID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("categoria_id = ?", categoriaID).Count(&n).Error
	return n, err
}

func (r *categoriaRepo) EliminarTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Categoria{}, "id = ?", id).Error
}

func (r *categoriaRepo) DB() *gorm.DB { return r.db }
