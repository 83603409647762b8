package repository

import (
	"context"
	"strings"

	"mundiclass/internal/dto"
	"mundiclass/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository defines the data access contract for user accounts.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type UsuarioRepository interface {
	Crear(ctx context.Context, u *model.Usuario) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	ObtenerPorCorreo(ctx context.Context, correo string) (*model.Usuario, error)
	ObtenerPorCedula(ctx context.Context, cedula string) (*model.Usuario, error)
	Listar(ctx context.Context, filter dto.UsuarioFilter) ([]model.Usuario, error)
	Actualizar(ctx context.Context, u *model.Usuario) error
	ContarClientes(ctx context.Context, usuarioID uuid.UUID) (int64, error)

	// EliminarTx runs inside the caller's transaction.
	EliminarTx(tx *gorm.DB, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Crear(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) ObtenerPorCorreo(ctx context.Context, correo string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("lower(correo) = lower(?)", correo).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) ObtenerPorCedula(ctx context.Context, cedula string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("cedula = ?", cedula).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) Listar(ctx context.Context, filter dto.UsuarioFilter) ([]model.Usuario, error) {
	q := r.db.WithContext(ctx).Model(&model.Usuario{})

	if filter.Nombre != "" {
		q = q.Where("lower(nombre) LIKE ?", contiene(filter.Nombre))
	}
	if filter.Correo != "" {
		q = q.Where("lower(correo) LIKE ?", contiene(filter.Correo))
	}
	if filter.Cedula != "" {
		q = q.Where("lower(cedula) LIKE ?", contiene(filter.Cedula))
	}
	if filter.Rol != "" {
		q = q.Where("rol = ?", filter.Rol)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.ClienteFrecuente != nil {
		q = q.Where("cliente_frecuente = ?", *filter.ClienteFrecuente)
	}

	var usuarios []model.Usuario
	err := q.Order("nombre asc").Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepo) Actualizar(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) ContarClientes(ctx context.Context, usuarioID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("usuario_id = ?", usuarioID).Count(&n).Error
	return n, err
}

func (r *usuarioRepo) EliminarTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Usuario{}, "id = ?", id).Error
}

func (r *usuarioRepo) DB() *gorm.DB { return r.db }

// contiene builds a case-insensitive LIKE pattern for substring matching.
// lower() on both sides keeps it portable between postgres and sqlite.
func contiene(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
