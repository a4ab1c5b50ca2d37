package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"calorietracker/internal/service"
)

// ProductHandler handles the product catalog endpoints.
type ProductHandler struct {
	svc service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// CreateProductRequest represents a new user-owned product. Values are per portion.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Calories    float64 `json:"calories" validate:"required,gt=0"`
	Protein     float64 `json:"protein" validate:"gte=0"`
	Carbs       float64 `json:"carbs" validate:"gte=0"`
	Fats        float64 `json:"fats" validate:"gte=0"`
	Fiber       float64 `json:"fiber" validate:"gte=0"`
	PortionSize string  `json:"portion_size" validate:"max=50"`
}

// List godoc
// @Summary List visible products
// @Description Default products plus the caller's own, ordered by name.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Failure 401 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	products, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return fromDomain(err)
	}
	return c.JSON(http.StatusOK, products)
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProductRequest true "Product"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.svc.Create(c.Request().Context(), userID, service.NewProduct{
		Name:        req.Name,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fats:        req.Fats,
		Fiber:       req.Fiber,
		PortionSize: req.PortionSize,
	})
	if err != nil {
		return fromDomain(err)
	}
	return c.JSON(http.StatusCreated, product)
}

// Delete godoc
// @Summary Delete an own product
// @Description Succeeds without effect for default products and products of other users.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), userID, id); err != nil {
		return fromDomain(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "product deleted"})
}
