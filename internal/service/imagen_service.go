package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"mundiclass/internal/model"
	"mundiclass/internal/repository"

	"github.com/google/uuid"
)

// AlmacenObjetos abstracts the external object storage the images land in.
type AlmacenObjetos interface {
	Subir(ctx context.Context, key, contentType string, datos []byte) error
	URLPublica(key string) string
}

// ImagenService uploads images to object storage and records one Multimedia
// row per upload so attachments stay queryable per owning record.
type ImagenService struct {
	almacen    AlmacenObjetos
	multimedia repository.MultimediaRepository
}

func NewImagenService(almacen AlmacenObjetos, multimedia repository.MultimediaRepository) *ImagenService {
	return &ImagenService{almacen: almacen, multimedia: multimedia}
}

// Subir validates the declared content type, pushes the bytes to storage
// under a collision-free key and records the attachment. Non-image payloads
// are rejected before anything is written.
func (s *ImagenService) Subir(ctx context.Context, modelType string, modelID uuid.UUID, nombreArchivo, contentType string, datos []byte) (*model.Multimedia, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, conflicto("El archivo debe ser una imagen")
	}
	if len(datos) == 0 {
		return nil, conflicto("El archivo está vacío")
	}

	key := fmt.Sprintf("%s/%s/%s%s", strings.ToLower(modelType), modelID, uuid.New(), filepath.Ext(nombreArchivo))
	if err := s.almacen.Subir(ctx, key, contentType, datos); err != nil {
		return nil, &UpstreamError{Mensaje: "No se pudo subir la imagen al almacenamiento", Causa: err}
	}

	m := &model.Multimedia{
		URL:       s.almacen.URLPublica(key),
		MediaType: contentType,
		ModelType: modelType,
		ModelID:   modelID,
	}
	if err := s.multimedia.Crear(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListarPorDueno returns the stored attachments for one record, newest first.
func (s *ImagenService) ListarPorDueno(ctx context.Context, modelType string, modelID uuid.UUID) ([]model.Multimedia, error) {
	return s.multimedia.ListarPorDueno(ctx, modelType, modelID)
}
