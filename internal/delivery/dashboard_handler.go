package delivery

import (
	"inventory_dashboard/internal/domain"
	"inventory_dashboard/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	useCase usecase.DashboardUseCase
	log     *logrus.Logger
}

func NewDashboardHandler(uc usecase.DashboardUseCase, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *DashboardHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/warehouses", h.ListWarehouses)
	router.GET("/chart-data", h.GetChartData)
	router.GET("/kpis", h.GetKPIs)
}

func (h *DashboardHandler) ListWarehouses(c *gin.Context) {
	warehouses, err := h.useCase.ListWarehouses(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list warehouses: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve warehouses: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Warehouses retrieved successfully", warehouses)
}

func (h *DashboardHandler) GetChartData(c *gin.Context) {
	rangeStr := c.DefaultQuery("range", string(domain.Range7d))
	r, err := domain.ParseChartRange(rangeStr)
	if err != nil {
		h.log.Warnf("Invalid range parameter: %s", rangeStr)
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	points, err := h.useCase.GetChartData(c.Request.Context(), r)
	if err != nil {
		h.log.Errorf("Failed to get chart data for range %s: %v", r, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve chart data: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Chart data retrieved successfully", points)
}

func (h *DashboardHandler) GetKPIs(c *gin.Context) {
	kpi, err := h.useCase.GetKPIs(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to compute KPIs: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to compute KPIs: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "KPIs computed successfully", kpi)
}
