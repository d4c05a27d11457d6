package handler

import (
	"net/http"
	"strconv"

	"finca/internal/apierror"
	"finca/internal/dto"
	"finca/internal/middleware"
	"finca/internal/service"

	"github.com/gin-gonic/gin"
)

type ValesHandler struct{ svc service.ValeService }

func NewValesHandler(svc service.ValeService) *ValesHandler { return &ValesHandler{svc: svc} }

// Registrar godoc
// @Summary Registrar vale (adelanto positivo, abono negativo)
// @Tags vales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ValeRequest true "Vale"
// @Success 201 {object} dto.ValeResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/vales [post]
func (h *ValesHandler) Registrar(c *gin.Context) {
	var req dto.ValeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), middleware.Owner(c), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Historial godoc
// @Summary Movimientos de vales
// @Description Con ?trabajador= incluye el saldo actual del trabajador.
// @Tags vales
// @Produce json
// @Security BearerAuth
// @Param trabajador query string false "Trabajador"
// @Param page query int false "Página" default(1)
// @Param limit query int false "Tamaño de página" default(50)
// @Success 200 {object} dto.ValeListResponse
// @Router /v1/vales [get]
func (h *ValesHandler) Historial(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	resp, err := h.svc.Historial(c.Request.Context(), middleware.Owner(c), c.Query("trabajador"), page, limit)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Saldo godoc
// @Summary Saldo de un trabajador
// @Tags vales
// @Produce json
// @Security BearerAuth
// @Param trabajador query string true "Trabajador"
// @Success 200 {object} dto.SaldoResponse
// @Router /v1/vales/saldo [get]
func (h *ValesHandler) Saldo(c *gin.Context) {
	trabajador := c.Query("trabajador")
	if trabajador == "" {
		c.JSON(http.StatusBadRequest, apierror.New("trabajador es obligatorio"))
		return
	}
	saldo, err := h.svc.Saldo(c.Request.Context(), middleware.Owner(c), trabajador)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SaldoResponse{Trabajador: trabajador, Saldo: saldo})
}

// Saldos godoc
// @Summary Saldos de todos los trabajadores con movimientos
// @Tags vales
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SaldoResponse
// @Router /v1/vales/saldos [get]
func (h *ValesHandler) Saldos(c *gin.Context) {
	resp, err := h.svc.Saldos(c.Request.Context(), middleware.Owner(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ValesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), middleware.Owner(c), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
