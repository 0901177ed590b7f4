package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-api/internal/logger"
	"studio-api/internal/models"
	"studio-api/internal/services"
	"studio-api/internal/utils"
)

// CatalogHandler serves the public site content endpoints and their admin
// CRUD counterparts.
type CatalogHandler struct {
	service *services.CatalogService
	log     *logger.Logger
}

func NewCatalogHandler(service *services.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, log: log}
}

// --- Offers ---

// ListOffers handles GET /api/offers (active only) and
// GET /api/admin/offers (everything).
func (h *CatalogHandler) ListOffers(activeOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		offers, err := h.service.ListOffers(c.Request.Context(), activeOnly)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Error fetching offers"))
			return
		}
		if offers == nil {
			offers = []*models.Offer{}
		}
		c.JSON(http.StatusOK, offers)
	}
}

func (h *CatalogHandler) CreateOffer(c *gin.Context) {
	var offer models.Offer
	if err := c.ShouldBindJSON(&offer); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload"))
		return
	}
	if err := h.service.CreateOffer(c.Request.Context(), &offer); err != nil {
		h.writeCatalogError(c, err, "Error creating offer")
		return
	}
	c.JSON(http.StatusCreated, offer)
}

func (h *CatalogHandler) UpdateOffer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var offer models.Offer
	if err := c.ShouldBindJSON(&offer); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload"))
		return
	}
	offer.ID = id
	if err := h.service.UpdateOffer(c.Request.Context(), &offer); err != nil {
		h.writeCatalogError(c, err, "Error updating offer")
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *CatalogHandler) DeleteOffer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteOffer(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err, "Error deleting offer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Offer deleted"})
}

// --- Portfolio ---

// ListPortfolio handles GET /api/portfolio with optional category and
// featured filters.
func (h *CatalogHandler) ListPortfolio(c *gin.Context) {
	opts := models.PortfolioListOptions{
		Category: c.Query("category"),
		Featured: c.Query("featured") == "true",
	}
	items, err := h.service.ListPortfolioItems(c.Request.Context(), opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Error fetching portfolio"))
		return
	}
	if items == nil {
		items = []*models.PortfolioItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) CreatePortfolioItem(c *gin.Context) {
	var item models.PortfolioItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload"))
		return
	}
	if err := h.service.CreatePortfolioItem(c.Request.Context(), &item); err != nil {
		h.writeCatalogError(c, err, "Error creating portfolio item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) UpdatePortfolioItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var item models.PortfolioItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload"))
		return
	}
	item.ID = id
	if err := h.service.UpdatePortfolioItem(c.Request.Context(), &item); err != nil {
		h.writeCatalogError(c, err, "Error updating portfolio item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) DeletePortfolioItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePortfolioItem(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err, "Error deleting portfolio item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted"})
}

// --- Testimonials ---

// ListTestimonials handles GET /api/testimonials (active only) and
// GET /api/admin/testimonials (everything).
func (h *CatalogHandler) ListTestimonials(activeOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		testimonials, err := h.service.ListTestimonials(c.Request.Context(), activeOnly)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Error fetching testimonials"))
			return
		}
		if testimonials == nil {
			testimonials = []*models.Testimonial{}
		}
		c.JSON(http.StatusOK, testimonials)
	}
}

func (h *CatalogHandler) CreateTestimonial(c *gin.Context) {
	var testimonial models.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload"))
		return
	}
	if err := h.service.CreateTestimonial(c.Request.Context(), &testimonial); err != nil {
		h.writeCatalogError(c, err, "Error creating testimonial")
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

func (h *CatalogHandler) UpdateTestimonial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var testimonial models.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload"))
		return
	}
	testimonial.ID = id
	if err := h.service.UpdateTestimonial(c.Request.Context(), &testimonial); err != nil {
		h.writeCatalogError(c, err, "Error updating testimonial")
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

func (h *CatalogHandler) DeleteTestimonial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteTestimonial(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err, "Error deleting testimonial")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}

func (h *CatalogHandler) writeCatalogError(c *gin.Context, err error, fallback string) {
	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, utils.ValidationErrorResponse("Validation error", verrs))
	case errors.Is(err, services.ErrOfferNotFound):
		c.JSON(http.StatusNotFound, utils.ErrorResponse("Offer not found"))
	case errors.Is(err, services.ErrPortfolioItemNotFound):
		c.JSON(http.StatusNotFound, utils.ErrorResponse("Portfolio item not found"))
	case errors.Is(err, services.ErrTestimonialNotFound):
		c.JSON(http.StatusNotFound, utils.ErrorResponse("Testimonial not found"))
	default:
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse(fallback))
	}
}
