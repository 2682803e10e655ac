package http

import (
	"net/http"

	"shop-service/internal/i18n"
	"shop-service/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.products.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) SubmitOrder(c *gin.Context) {
	var form services.OrderForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.SubmitOrder(c.Request.Context(), form)
	if err != nil {
		// every rejection reads as one user-facing message
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SubmitOrderResponse{OrderID: order.ID, ClearCart: true})
}

func (h *Handler) SubmitInquiry(c *gin.Context) {
	var form services.InquiryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inputs"})
		return
	}

	if err := h.inquiries.Submit(c.Request.Context(), form, c.ClientIP()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) GetPolicy(c *gin.Context) {
	locale := c.DefaultQuery("locale", string(i18n.DefaultLocale))
	p, err := h.policies.Get(c.Request.Context(), c.Param("slug"), locale)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
