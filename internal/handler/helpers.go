package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"reflect"

	"mundiclass/internal/apierror"
	"mundiclass/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds a JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return validarStruct(c, req)
}

// bindFormAndValidate is the multipart counterpart of bindAndValidate, used
// by create endpoints that accept an image part alongside the form fields.
func bindFormAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Formulario invalido: "+err.Error()))
		return false
	}
	return validarStruct(c, req)
}

func validarStruct(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, filter interface{}) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametros invalidos: "+err.Error()))
		return false
	}
	return true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}

func leerArchivo(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// respondError translates service errors to HTTP statuses. Not-found maps to
// 404, conflicts (uniqueness, invalid references, insufficient stock, blocked
// deletes) to 400, storage failures to 502-style 500, anything else to a
// generic 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var noEnc *service.NoEncontradoError
	var conf *service.ConflictoError
	var ups *service.UpstreamError
	switch {
	case errors.As(err, &noEnc):
		c.JSON(http.StatusNotFound, apierror.New(noEnc.Mensaje))
	case errors.As(err, &conf):
		c.JSON(http.StatusBadRequest, apierror.New(conf.Mensaje))
	case errors.As(err, &ups):
		c.JSON(http.StatusInternalServerError, apierror.New(ups.Mensaje))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}
