package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
	"github.com/tuilatri/Amazon-Clone/internal/service"
	"github.com/tuilatri/Amazon-Clone/pkg/auth"
)

type CatalogHandler struct {
	catalog *service.CatalogSvc
}

func NewCatalogHandler(catalog *service.CatalogSvc) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Home returns the storefront picks. A valid bearer token personalises the
// list; anonymous callers get the rating sort.
func (h *CatalogHandler) Home(c *gin.Context) {
	var userID uint
	if header := c.GetHeader("Authorization"); len(header) > 7 && header[:7] == "Bearer " {
		if claims, err := auth.ParseValidate(header[7:]); err == nil {
			if uid, perr := strconv.ParseUint(claims.Sub, 10, 64); perr == nil {
				userID = uint(uid)
			}
		}
	}
	products, err := h.catalog.HomePicks(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *CatalogHandler) Grouped(c *gin.Context) {
	grouped, err := h.catalog.GroupedByCategory(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}

func (h *CatalogHandler) Product(c *gin.Context) {
	p, err := h.catalog.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) Related(c *gin.Context) {
	products, err := h.catalog.RelatedTo(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *CatalogHandler) ByCategory(c *gin.Context) {
	products, err := h.catalog.ByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	cats, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

func (h *CatalogHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		fail(c, domain.Validation("query parameter q is required"))
		return
	}
	products, err := h.catalog.Search(c.Request.Context(), query)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *CatalogHandler) Trending(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	products, total, err := h.catalog.Trending(c.Request.Context(), page, perPage)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "total": total, "page": page, "per_page": perPage})
}
