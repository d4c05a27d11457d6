package handler

import (
	"fmt"
	"net/http"

	"finca/internal/dto"
	"finca/internal/middleware"
	"finca/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ReportesHandler struct {
	svc    service.ReporteService
	export service.ExportService
}

func NewReportesHandler(svc service.ReporteService, export service.ExportService) *ReportesHandler {
	return &ReportesHandler{svc: svc, export: export}
}

// Resumen godoc
// @Summary Resumen financiero del período
// @Description total_general = mano_obra + insumos; la cosecha se informa aparte.
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param desde query string true "YYYY-MM-DD"
// @Param hasta query string true "YYYY-MM-DD"
// @Success 200 {object} dto.ResumenPeriodoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/reportes/resumen [get]
func (h *ReportesHandler) Resumen(c *gin.Context) {
	var q dto.RangoQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	resp, err := h.svc.ResumenPeriodo(c.Request.Context(), middleware.Owner(c), q)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GastosPorLote godoc
// @Summary Gasto por lote (insumos + mano de obra)
// @Description Sin desde/hasta acumula todo el historial.
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param desde query string false "YYYY-MM-DD"
// @Param hasta query string false "YYYY-MM-DD"
// @Success 200 {array} dto.GastoLoteResponse
// @Router /v1/reportes/gastos-lote [get]
func (h *ReportesHandler) GastosPorLote(c *gin.Context) {
	var q dto.RangoOpcionalQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	resp, err := h.svc.GastosPorLote(c.Request.Context(), middleware.Owner(c), q)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cosecha godoc
// @Summary Reporte de cosecha por trabajador y por lote
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param desde query string true "YYYY-MM-DD"
// @Param hasta query string true "YYYY-MM-DD"
// @Success 200 {object} dto.ReporteCosechaResponse
// @Router /v1/reportes/cosecha [get]
func (h *ReportesHandler) Cosecha(c *gin.Context) {
	var q dto.RangoQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	resp, err := h.svc.ReporteCosecha(c.Request.Context(), middleware.Owner(c), q)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Respaldo godoc
// @Summary Respaldo en Excel de jornadas, cosecha, insumos y vales
// @Tags reportes
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param desde query string false "YYYY-MM-DD"
// @Param hasta query string false "YYYY-MM-DD"
// @Success 200 {file} file
// @Router /v1/exportes/respaldo [get]
func (h *ReportesHandler) Respaldo(c *gin.Context) {
	var q dto.RangoOpcionalQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	f, err := h.export.Respaldo(c.Request.Context(), middleware.Owner(c), q)
	if err != nil {
		responderError(c, err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("respaldo: close workbook")
		}
	}()

	nombre := fmt.Sprintf("respaldo_%s.xlsx", hoy().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Str("owner", middleware.Owner(c)).Msg("respaldo: write workbook")
	}
}
