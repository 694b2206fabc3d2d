package handler

import (
	"net/http"

	"tokopos/internal/dto"
	"tokopos/internal/middleware"
	"tokopos/internal/service"

	"github.com/gin-gonic/gin"
)

type SetoranHandler struct{ svc *service.SetoranService }

func NewSetoranHandler(svc *service.SetoranService) *SetoranHandler {
	return &SetoranHandler{svc: svc}
}

func (h *SetoranHandler) Create(c *gin.Context) {
	var req dto.CreateSetoranRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), middleware.GetTokoID(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SetoranHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), middleware.GetTokoID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Laporan aggregates deposits over ?start=&end= (inclusive days).
func (h *SetoranHandler) Laporan(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	resp, err := h.svc.Laporan(c.Request.Context(), middleware.GetTokoID(c), start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
