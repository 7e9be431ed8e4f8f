package delivery

import (
	"inventory_dashboard/internal/domain"
	"inventory_dashboard/internal/usecase"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

// RegisterRoutes wires the product routes; mutationMiddleware runs only in front of
// the two mutating endpoints.
func (h *ProductHandler) RegisterRoutes(router gin.IRouter, mutationMiddleware ...gin.HandlerFunc) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.PATCH("/:id/demand", chain(mutationMiddleware, h.UpdateDemand)...)
		products.POST("/:id/transfer", chain(mutationMiddleware, h.TransferStock)...)
	}
}

func chain(middleware []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	handlers := make([]gin.HandlerFunc, 0, len(middleware)+1)
	handlers = append(handlers, middleware...)
	return append(handlers, handler)
}

type UpdateDemandRequest struct {
	NewDemand *int `json:"newDemand" binding:"required"`
}

type TransferStockRequest struct {
	Quantity             *int   `json:"quantity" binding:"required"`
	DestinationWarehouse string `json:"destinationWarehouse" binding:"required"`
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	query := domain.ProductQuery{
		Search:    c.Query("search"),
		Warehouse: c.Query("warehouse"),
		Status:    domain.Status(c.Query("status")),
		Page:      h.intQuery(c, "page"),
		PageSize:  h.intQuery(c, "pageSize"),
	}
	if clampStr := c.Query("clamp"); clampStr != "" {
		clamp, err := strconv.ParseBool(clampStr)
		if err != nil {
			h.log.Warnf("Invalid clamp parameter '%s', ignoring", clampStr)
		}
		query.ClampPage = clamp
	}

	h.log.Infof("Listing products (search: %q, warehouse: %q, status: %q, page: %d, pageSize: %d)",
		query.Search, query.Warehouse, query.Status, query.Page, query.PageSize)
	page, err := h.useCase.ListProducts(c.Request.Context(), query)
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve products: "+err.Error())
		return
	}

	if len(page.Items) == 0 {
		SuccessResponse(c, http.StatusOK, "No products found matching criteria", page)
		return
	}
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", page)
}

// intQuery returns 0 for a missing parameter and -1 for a malformed one,
// leaving the use case to substitute defaults.
func (h *ProductHandler) intQuery(c *gin.Context, key string) int {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		h.log.Warnf("Invalid %s parameter '%s', using default", key, raw)
		return -1
	}
	return v
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	product, err := h.useCase.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve product: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) UpdateDemand(c *gin.Context) {
	id := c.Param("id")
	var req UpdateDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for update demand of product ID %s: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.useCase.UpdateDemand(c.Request.Context(), id, *req.NewDemand)
	if err != nil {
		h.log.Warnf("Failed to update demand for product ID %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to update demand: "+err.Error())
		return
	}

	h.log.Infof("Demand updated successfully: ID %s, demand %d", product.ID, product.Demand)
	SuccessResponse(c, http.StatusOK, "Demand updated successfully", product)
}

func (h *ProductHandler) TransferStock(c *gin.Context) {
	id := c.Param("id")
	var req TransferStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for transfer of product ID %s: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.useCase.TransferStock(c.Request.Context(), id, *req.Quantity, req.DestinationWarehouse)
	if err != nil {
		h.log.Warnf("Failed to transfer stock for product ID %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to transfer stock: "+err.Error())
		return
	}

	h.log.Infof("Stock transferred successfully: ID %s, remaining stock %d", product.ID, product.Stock)
	SuccessResponse(c, http.StatusOK, "Stock transferred successfully", product)
}
