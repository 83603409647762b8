package dto

// SubirImagenResponse is returned by the per-entity image upload endpoints.
type SubirImagenResponse struct {
	RegistroID string `json:"registro_id"`
	URLPublica string `json:"url_publica"`
}

// MultimediaResponse lists stored attachments for a record.
type MultimediaResponse struct {
	ID          string  `json:"id"`
	URL         string  `json:"url"`
	MediaType   string  `json:"media_type"`
	Description *string `json:"description"`
	ModelType   string  `json:"model_type"`
	ModelID     string  `json:"model_id"`
	CreadoEn    string  `json:"creado_en"`
}
