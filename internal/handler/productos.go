package handler

import (
	"net/http"

	"mundiclass/internal/apierror"
	"mundiclass/internal/dto"
	"mundiclass/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct {
	svc      *service.ProductoService
	imagenes *service.ImagenService
}

func NewProductosHandler(svc *service.ProductoService, imagenes *service.ImagenService) *ProductosHandler {
	return &ProductosHandler{svc: svc, imagenes: imagenes}
}

// Crear POST /api/productos
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductoResponse(p))
}

// Listar GET /api/productos
func (h *ProductosHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
	if !bindQuery(c, &filter) {
		return
	}
	productos, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, toProductoResponse(&productos[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /api/productos/:id
func (h *ProductosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductoResponse(p))
}

// Actualizar PUT /api/productos/:id
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductoResponse(p))
}

// Eliminar DELETE /api/productos/:id
func (h *ProductosHandler) Eliminar(c *gin.Context) {
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

// ListarImagenes GET /api/productos/:id/imagenes
func (h *ProductosHandler) ListarImagenes(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.svc.Obtener(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	medios, err := h.imagenes.ListarPorDueno(c.Request.Context(), "Producto", id)
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

// SubirImagen POST /api/productos/:id/imagen
func (h *ProductosHandler) SubirImagen(c *gin.Context) {
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

	m, err := h.imagenes.Subir(c.Request.Context(), "Producto", id, fh.Filename, fh.Header.Get("Content-Type"), datos)
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
