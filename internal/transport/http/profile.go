package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
	"github.com/tuilatri/Amazon-Clone/internal/service"
)

type ProfileHandler struct {
	users *service.UserSvc
}

func NewProfileHandler(users *service.UserSvc) *ProfileHandler {
	return &ProfileHandler{users: users}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	view, err := h.users.Profile(c.Request.Context(), currentEmail(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type profileUpdateReq struct {
	Name   string `json:"user_name" binding:"required"`
	Phone  string `json:"phone_number"`
	Age    *int   `json:"age"`
	Gender string `json:"gender"`
	City   string `json:"city"`

	UnitNumber   string `json:"unit_number"`
	StreetNumber string `json:"street_number"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	Region       string `json:"region"`
	PostalCode   string `json:"postal_code"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req profileUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.Validation(err.Error()))
		return
	}
	view, err := h.users.UpdateProfile(c.Request.Context(), currentEmail(c), service.ProfileUpdate{
		Name:   req.Name,
		Phone:  req.Phone,
		Age:    req.Age,
		Gender: req.Gender,
		City:   req.City,
		Address: domain.Address{
			UnitNumber:   req.UnitNumber,
			StreetNumber: req.StreetNumber,
			AddressLine1: req.AddressLine1,
			AddressLine2: req.AddressLine2,
			Region:       req.Region,
			PostalCode:   req.PostalCode,
		},
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "profile": view})
}
