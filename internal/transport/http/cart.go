package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
	"github.com/tuilatri/Amazon-Clone/internal/service"
)

type CartHandler struct {
	carts *service.CartSvc
}

func NewCartHandler(carts *service.CartSvc) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.carts.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type cartAddReq struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) Add(c *gin.Context) {
	var req cartAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.Validation(err.Error()))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if err := h.carts.Add(c.Request.Context(), currentUserID(c), req.ProductID, req.Quantity); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item added to cart"})
}

type cartQtyReq struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (h *CartHandler) UpdateQty(c *gin.Context) {
	var req cartQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.Validation(err.Error()))
		return
	}
	if err := h.carts.UpdateQty(c.Request.Context(), currentUserID(c), c.Param("productId"), req.Quantity); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart item updated"})
}

func (h *CartHandler) Remove(c *gin.Context) {
	if err := h.carts.Remove(c.Request.Context(), currentUserID(c), c.Param("productId")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart item removed"})
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), currentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
