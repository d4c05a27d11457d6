package handler

import (
	"net/http"
	"path/filepath"

	"finca/internal/dto"
	"finca/internal/infra"
	"finca/internal/middleware"
	"finca/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanillasHandler serves both payroll sheets; :tipo is "jornadas" or "cosecha".
type PlanillasHandler struct {
	svc         service.PlanillaService
	pdfDir      string
	nombreFinca string
}

func NewPlanillasHandler(svc service.PlanillaService, pdfDir, nombreFinca string) *PlanillasHandler {
	return &PlanillasHandler{svc: svc, pdfDir: pdfDir, nombreFinca: nombreFinca}
}

// Calcular godoc
// @Summary Calcular planilla
// @Description Bruto por trabajador, deuda de vales, abono y neto. No registra nada.
// @Tags planillas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tipo path string true "jornadas | cosecha"
// @Param body body dto.PlanillaRequest true "Período y abonos"
// @Success 200 {object} dto.PlanillaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/planillas/{tipo}/calcular [post]
func (h *PlanillasHandler) Calcular(c *gin.Context) {
	var req dto.PlanillaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.Tipo = c.Param("tipo")
	resp, err := h.svc.Calcular(c.Request.Context(), middleware.Owner(c), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Pagar godoc
// @Summary Pagar planilla y aplicar rebajos de vales
// @Description Registra un vale negativo por cada abono. Repetir el pago del mismo período no vuelve a rebajar.
// @Tags planillas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tipo path string true "jornadas | cosecha"
// @Param body body dto.PagarPlanillaRequest true "Período, abonos y fecha de pago"
// @Success 200 {object} dto.PagoPlanillaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/planillas/{tipo}/pagar [post]
func (h *PlanillasHandler) Pagar(c *gin.Context) {
	var req dto.PagarPlanillaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.Tipo = c.Param("tipo")
	resp, err := h.svc.Pagar(c.Request.Context(), middleware.Owner(c), req, hoy())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PDF godoc
// @Summary Planilla en PDF
// @Tags planillas
// @Accept json
// @Produce application/pdf
// @Security BearerAuth
// @Param tipo path string true "jornadas | cosecha"
// @Param body body dto.PlanillaRequest true "Período y abonos"
// @Success 200 {file} file
// @Router /v1/planillas/{tipo}/pdf [post]
func (h *PlanillasHandler) PDF(c *gin.Context) {
	var req dto.PlanillaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.Tipo = c.Param("tipo")
	planilla, err := h.svc.Calcular(c.Request.Context(), middleware.Owner(c), req)
	if err != nil {
		responderError(c, err)
		return
	}
	path, err := infra.GeneratePlanillaPDF(planilla, h.nombreFinca, h.pdfDir)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
