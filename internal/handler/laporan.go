package handler

import (
	"net/http"
	"path/filepath"

	"tokopos/internal/apierror"
	"tokopos/internal/dto"
	"tokopos/internal/infra"
	"tokopos/internal/middleware"
	"tokopos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LaporanHandler struct {
	svc            *service.LaporanService
	transaksi      *service.TransaksiService
	toko           *service.TokoService
	pdfStoragePath string
}

func NewLaporanHandler(svc *service.LaporanService, transaksi *service.TransaksiService, toko *service.TokoService, pdfStoragePath string) *LaporanHandler {
	return &LaporanHandler{svc: svc, transaksi: transaksi, toko: toko, pdfStoragePath: pdfStoragePath}
}

// Penjualan builds the sales report over ?start=&end= (inclusive days).
func (h *LaporanHandler) Penjualan(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	resp, err := h.svc.Penjualan(c.Request.Context(), middleware.GetTokoID(c), start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PenjualanPDF renders the report for ?start=&end= and returns the PDF
// inline. The same renderer serves the email worker.
func (h *LaporanHandler) PenjualanPDF(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	tokoID := middleware.GetTokoID(c)
	toko, err := h.toko.Get(c.Request.Context(), tokoID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	laporan, err := h.svc.Penjualan(c.Request.Context(), tokoID, start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	path, err := infra.GenerateLaporanPDF(laporan, toko.Nama, start, end, h.pdfStoragePath)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// EmailPenjualan queues a render-and-send job; the PDF is built off the
// request path by the worker pool.
func (h *LaporanHandler) EmailPenjualan(c *gin.Context) {
	var req dto.EmailLaporanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EmailPenjualan(c.Request.Context(), middleware.GetTokoID(c), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"detail": "Laporan sedang diproses dan akan dikirim ke email"})
}

func (h *LaporanHandler) CreateTransaksi(c *gin.Context) {
	var req dto.CreateTransaksiRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.transaksi.Create(c.Request.Context(), middleware.GetTokoID(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *LaporanHandler) GetTransaksi(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID tidak valid"))
		return
	}
	resp, err := h.transaksi.Get(c.Request.Context(), middleware.GetTokoID(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
