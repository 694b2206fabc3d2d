package handler

import (
	"errors"
	"net/http"
	"reflect"
	"time"

	"tokopos/internal/apierror"
	"tokopos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
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

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON tidak valid: "+err.Error()))
		return false
	}
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

// parseDateRange reads the required ?start=YYYY-MM-DD&end=YYYY-MM-DD pair.
// Returns ok=false with the response already written on bad input.
func parseDateRange(c *gin.Context) (start, end time.Time, ok bool) {
	var err error
	start, err = time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parameter start harus berformat YYYY-MM-DD"))
		return start, end, false
	}
	end, err = time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parameter end harus berformat YYYY-MM-DD"))
		return start, end, false
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, apierror.New("Parameter end tidak boleh sebelum start"))
		return start, end, false
	}
	return start, end, true
}

// writeServiceError maps domain errors onto HTTP statuses. Unknown errors are
// attached to the context for the error handler middleware to log.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTokoNotFound),
		errors.Is(err, service.ErrProdukNotFound),
		errors.Is(err, service.ErrPembelianNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrReturNotFound),
		errors.Is(err, service.ErrOperasionalNotFound),
		errors.Is(err, service.ErrTransaksiNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrPINSalah):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	case errors.Is(err, service.ErrStatusFinal):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrKeranjangKosong),
		errors.Is(err, service.ErrTanggalInvalid),
		errors.Is(err, service.ErrHargaKosong),
		errors.Is(err, service.ErrFieldTidakDikenal):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
	}
}
