package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
	"github.com/tuilatri/Amazon-Clone/internal/repository"
	"github.com/tuilatri/Amazon-Clone/internal/service"
)

type AdminHandler struct {
	admin  *service.AdminSvc
	orders *service.OrderSvc
}

func NewAdminHandler(admin *service.AdminSvc, orders *service.OrderSvc) *AdminHandler {
	return &AdminHandler{admin: admin, orders: orders}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) OrderStatusCounts(c *gin.Context) {
	counts, err := h.admin.OrderStatusCounts(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *AdminHandler) Orders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	f := repository.OrderFilter{
		Page:    page,
		PerPage: perPage,
		Search:  c.Query("search"),
	}
	if raw := c.Query("status"); raw != "" {
		st, ok := domain.ParseOrderStatus(raw)
		if !ok {
			fail(c, domain.Validation("unknown order status"))
			return
		}
		f.Status = st
	}
	pageOut, err := h.admin.Orders(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, pageOut)
}

func (h *AdminHandler) Order(c *gin.Context) {
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
	c.JSON(http.StatusOK, view)
}

type orderStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminHandler) SetOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, domain.Validation("order id must be numeric"))
		return
	}
	var req orderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.Validation(err.Error()))
		return
	}
	st, ok := domain.ParseOrderStatus(req.Status)
	if !ok {
		fail(c, domain.Validation("unknown order status"))
		return
	}
	order, err := h.orders.SetStatus(c.Request.Context(), uint(id), st)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "order status updated",
		"order_id": order.ID,
		"status":   order.Status.String(),
	})
}

func (h *AdminHandler) Users(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	f := repository.UserFilter{
		Page:        page,
		PerPage:     perPage,
		NameSearch:  c.Query("name"),
		EmailSearch: c.Query("email"),
		PhoneSearch: c.Query("phone"),
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
	}
	if raw := c.Query("status"); raw != "" {
		f.Status = domain.UserStatus(raw)
	}
	if raw := c.Query("role_id"); raw != "" {
		roleID, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, domain.Validation("role_id must be numeric"))
			return
		}
		f.Role = domain.Role(roleID)
	}
	f.RegisteredFrom = parseDate(c.Query("registered_from"))
	f.RegisteredTo = parseDate(c.Query("registered_to"))
	f.LastActiveFrom = parseDate(c.Query("last_active_from"))
	f.LastActiveTo = parseDate(c.Query("last_active_to"))
	pageOut, err := h.admin.Users(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, pageOut)
}

func parseDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (h *AdminHandler) User(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, domain.Validation("user id must be numeric"))
		return
	}
	detail, err := h.admin.UserDetail(c.Request.Context(), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, domain.Validation("user id must be numeric"))
		return
	}
	var req service.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.Validation(err.Error()))
		return
	}
	u, err := h.admin.UpdateUser(c.Request.Context(), uint(id), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated", "user": u})
}

type userStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, domain.Validation("user id must be numeric"))
		return
	}
	var req userStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.Validation(err.Error()))
		return
	}
	if err := h.admin.SetUserStatus(c.Request.Context(), uint(id), domain.UserStatus(req.Status)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user status updated"})
}

type bulkStatusReq struct {
	UserIDs []uint `json:"user_ids" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

func (h *AdminHandler) BulkSetUserStatus(c *gin.Context) {
	var req bulkStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.Validation(err.Error()))
		return
	}
	res, err := h.admin.BulkSetUserStatus(c.Request.Context(), req.UserIDs, domain.UserStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AdminHandler) UserOrders(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, domain.Validation("user id must be numeric"))
		return
	}
	hist, err := h.admin.UserOrders(c.Request.Context(), uint(id), c.Query("period"), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hist)
}

func (h *AdminHandler) ExportCustomers(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="customers.csv"`)
	if err := h.admin.WriteCustomersCSV(c.Request.Context(), c.Writer); err != nil {
		fail(c, err)
		return
	}
}
