package handler

import (
	"encoding/json"
	"time"

	"mundiclass/internal/dto"
	"mundiclass/internal/model"
)

func toUsuarioResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:               u.ID.String(),
		Nombre:           u.Nombre,
		Correo:           u.Correo,
		Rol:              u.Rol,
		Cedula:           u.Cedula,
		Tipo:             u.Tipo,
		ClienteFrecuente: u.ClienteFrecuente,
		CreadoEn:         u.CreadoEn.Format(time.RFC3339),
		ActualizadoEn:    u.ActualizadoEn.Format(time.RFC3339),
	}
}

func toClienteResponse(c *model.Cliente) dto.ClienteResponse {
	var usuarioID *string
	if c.UsuarioID != nil {
		s := c.UsuarioID.String()
		usuarioID = &s
	}
	return dto.ClienteResponse{
		ID:               c.ID.String(),
		Nombre:           c.Nombre,
		Cedula:           c.Cedula,
		TipoCliente:      c.TipoCliente,
		ClienteFrecuente: c.ClienteFrecuente,
		UsuarioID:        usuarioID,
		CreadoEn:         c.CreadoEn.Format(time.RFC3339),
	}
}

func toCategoriaResponse(c *model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:            c.ID.String(),
		Nombre:        c.Nombre,
		Codigo:        c.Codigo,
		ImagenURL:     c.ImagenURL,
		CreadoEn:      c.CreadoEn.Format(time.RFC3339),
		ActualizadoEn: c.ActualizadoEn.Format(time.RFC3339),
	}
}

func toProductoResponse(p *model.Producto) dto.ProductoResponse {
	var categoriaID *string
	if p.CategoriaID != nil {
		s := p.CategoriaID.String()
		categoriaID = &s
	}
	return dto.ProductoResponse{
		ID:             p.ID.String(),
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		Cantidad:       p.Cantidad,
		ValorUnitario:  p.ValorUnitario,
		ValorMayorista: p.ValorMayorista,
		CategoriaID:    categoriaID,
		ImagenURL:      p.ImagenURL,
		CreadoEn:       p.CreadoEn.Format(time.RFC3339),
		ActualizadoEn:  p.ActualizadoEn.Format(time.RFC3339),
	}
}

func toCompraResponse(c *model.Compra) dto.CompraResponse {
	resp := dto.CompraResponse{
		ID:                     c.ID.String(),
		ClienteID:              c.ClienteID.String(),
		ProductoID:             c.ProductoID.String(),
		Cantidad:               c.Cantidad,
		PrecioUnitarioAplicado: c.PrecioUnitarioAplicado,
		Total:                  c.Total,
		Fecha:                  c.Fecha.Format(time.RFC3339),
	}
	if c.Cliente != nil {
		resp.Cliente = c.Cliente.Nombre
	}
	if c.Producto != nil {
		resp.Producto = c.Producto.Nombre
	}
	return resp
}

func toMultimediaResponse(m *model.Multimedia) dto.MultimediaResponse {
	return dto.MultimediaResponse{
		ID:          m.ID.String(),
		URL:         m.URL,
		MediaType:   m.MediaType,
		Description: m.Description,
		ModelType:   m.ModelType,
		ModelID:     m.ModelID.String(),
		CreadoEn:    m.CreadoEn.Format(time.RFC3339),
	}
}

func toHistorialResponse(h *model.HistorialEliminado) dto.HistorialEliminadoResponse {
	var datos map[string]any
	// Datos was marshalled by us at delete time; a decode failure would mean
	// storage corruption, surface the raw state as an empty object instead.
	_ = json.Unmarshal(h.Datos, &datos)
	return dto.HistorialEliminadoResponse{
		ID:          h.ID.String(),
		Tabla:       h.Tabla,
		RegistroID:  h.RegistroID.String(),
		Datos:       datos,
		EliminadoEn: h.EliminadoEn.Format(time.RFC3339),
	}
}
