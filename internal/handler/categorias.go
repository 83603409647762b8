package handler

import (
	"net/http"
	"strings"

	"mundiclass/internal/apierror"
	"mundiclass/internal/dto"
	"mundiclass/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriasHandler struct {
	svc      *service.CategoriaService
	imagenes *service.ImagenService
}

func NewCategoriasHandler(svc *service.CategoriaService, imagenes *service.ImagenService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc, imagenes: imagenes}
}

// Crear POST /api/categorias
// Accepts JSON, or multipart form data with an optional "archivo" image part
// that is uploaded to object storage and linked to the new category.
func (h *CategoriasHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaRequest

	esMultipart := strings.HasPrefix(c.ContentType(), "multipart/form-data")
	if esMultipart {
		if !bindFormAndValidate(c, &req) {
			return
		}
	} else if !bindAndValidate(c, &req) {
		return
	}

	cat, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	if esMultipart {
		if fh, err := c.FormFile("archivo"); err == nil {
			datos, err := leerArchivo(fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
				return
			}
			m, err := h.imagenes.Subir(c.Request.Context(), "Categoria", cat.ID, fh.Filename, fh.Header.Get("Content-Type"), datos)
			if err != nil {
				respondError(c, err)
				return
			}
			cat, err = h.svc.ActualizarImagen(c.Request.Context(), cat.ID, m.URL)
			if err != nil {
				respondError(c, err)
				return
			}
		}
	}

	c.JSON(http.StatusCreated, toCategoriaResponse(cat))
}

// Listar GET /api/categorias
func (h *CategoriasHandler) Listar(c *gin.Context) {
	var filter dto.CategoriaFilter
	if !bindQuery(c, &filter) {
		return
	}
	categorias, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		resp = append(resp, toCategoriaResponse(&categorias[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /api/categorias/:id
func (h *CategoriasHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cat, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCategoriaResponse(cat))
}

// Actualizar PUT /api/categorias/:id
func (h *CategoriasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cat, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCategoriaResponse(cat))
}

// Eliminar DELETE /api/categorias/:id
func (h *CategoriasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListarImagenes GET /api/categorias/:id/imagenes
func (h *CategoriasHandler) ListarImagenes(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.svc.Obtener(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	medios, err := h.imagenes.ListarPorDueno(c.Request.Context(), "Categoria", id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.MultimediaResponse, 0, len(medios))
	for i := range medios {
		resp = append(resp, toMultimediaResponse(&medios[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// SubirImagen POST /api/categorias/:id/imagen
func (h *CategoriasHandler) SubirImagen(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.svc.Obtener(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	fh, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Falta el archivo"))
		return
	}
	datos, err := leerArchivo(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}

	m, err := h.imagenes.Subir(c.Request.Context(), "Categoria", id, fh.Filename, fh.Header.Get("Content-Type"), datos)
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := h.svc.ActualizarImagen(c.Request.Context(), id, m.URL); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SubirImagenResponse{RegistroID: id.String(), URLPublica: m.URL})
}
