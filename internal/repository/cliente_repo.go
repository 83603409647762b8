package repository

import (
	"context"

	"mundiclass/internal/dto"
	"mundiclass/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Crear(ctx context.Context, c *model.Cliente) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	ObtenerPorCedula(ctx context.Context, cedula string) (*model.Cliente, error)
	Listar(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, error)
	Actualizar(ctx context.Context, c *model.Cliente) error
	ContarCompras(ctx context.Context, clienteID uuid.UUID) (int64, error)
	EliminarTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Crear(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Preload("Usuario").First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) ObtenerPorCedula(ctx context.Context, cedula string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("cedula = ?", cedula).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) Listar(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, error) {
	q := r.db.WithContext(ctx).Model(&model.Cliente{}).Preload("Usuario")

	if filter.Nombre != "" {
		q = q.Where("lower(nombre) LIKE ?", contiene(filter.Nombre))
	}
	if filter.Cedula != "" {
		q = q.Where("lower(cedula) LIKE ?", contiene(filter.Cedula))
	}
	if filter.TipoCliente != "" {
		q = q.Where("tipo_cliente = ?", filter.TipoCliente)
	}
	if filter.ClienteFrecuente != nil {
		q = q.Where("cliente_frecuente = ?", *filter.ClienteFrecuente)
	}

	var clientes []model.Cliente
	err := q.Order("nombre asc").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Actualizar(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) ContarCompras(ctx context.Context, clienteID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Compra{}).
		Where("cliente_id = ?", clienteID).Count(&n).Error
	return n, err
}

func (r *clienteRepo) EliminarTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Cliente{}, "id = ?", id).Error
}

func (r *clienteRepo) DB() *gorm.DB { return r.db }
