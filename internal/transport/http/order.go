package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
	"github.com/tuilatri/Amazon-Clone/internal/service"
)

type OrderHandler struct {
	orders *service.OrderSvc
}

func NewOrderHandler(orders *service.OrderSvc) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	view, err := h.orders.CheckoutDisplay(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type createOrderReq struct {
	PaymentMethodID  uint                     `json:"payment_method_id" binding:"required"`
	ShippingMethodID uint                     `json:"shipping_method_id" binding:"required"`
	Items            []service.OrderItemInput `json:"items" binding:"required"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.Validation(err.Error()))
		return
	}
	receipt, err := h.orders.Create(c.Request.Context(), service.CreateOrderInput{
		UserID:           currentUserID(c),
		PaymentMethodID:  req.PaymentMethodID,
		ShippingMethodID: req.ShippingMethodID,
		Items:            req.Items,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "order placed successfully", "order": receipt})
}

func (h *OrderHandler) List(c *gin.Context) {
	views, err := h.orders.ListForUser(c.Request.Context(), currentEmail(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": views})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, domain.Validation("order id must be numeric"))
		return
	}
	view, err := h.orders.Get(c.Request.Context(), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	if c.GetString(ctxRole) != domain.RoleAdmin.String() && view.UserID != currentUserID(c) {
		fail(c, domain.Forbidden("you are not authorized to view this order"))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, domain.Validation("order id must be numeric"))
		return
	}
	order, err := h.orders.Cancel(c.Request.Context(), uint(id), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "order cancelled",
		"order_id": order.ID,
		"status":   order.Status.String(),
	})
}
