package handler

import (
	"net/http"

	"tokopos/internal/apierror"
	"tokopos/internal/dto"
	"tokopos/internal/middleware"
	"tokopos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OperasionalHandler struct{ svc *service.OperasionalService }

func NewOperasionalHandler(svc *service.OperasionalService) *OperasionalHandler {
	return &OperasionalHandler{svc: svc}
}

func (h *OperasionalHandler) Create(c *gin.Context) {
	var req dto.CreateOperasionalRequest
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

func (h *OperasionalHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID tidak valid"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), middleware.GetTokoID(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OperasionalHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID tidak valid"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.GetTokoID(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Laporan aggregates expenses over ?start=&end= (inclusive days).
func (h *OperasionalHandler) Laporan(c *gin.Context) {
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
