package http

import (
	"encoding/base64"
	"net/http"

	"shop-service/internal/domain"
	"shop-service/internal/i18n"
	"shop-service/internal/services"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "session"

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.SetCookie(sessionCookie, token, int(24*60*60), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) AdminListOrders(c *gin.Context) {
	var status *domain.OrderStatus
	if s := c.Query("status"); s != "" {
		st := domain.OrderStatus(s)
		if !domain.ValidStatus(st) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}
		status = &st
	}

	orders, err := h.orders.ListOrders(c.Request.Context(), status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) AdminGetOrder(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"),
		domain.OrderStatus(req.Status), req.Carrier, req.TrackingNumber)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.orders.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) SendOrderEmail(c *gin.Context) {
	var req SendOrderEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.orders.SendOrderEmail(c.Request.Context(), c.Param("id"),
		req.Subject, req.Message, req.AttachInvoice, req.Locale)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DownloadInvoice returns the rendered invoice, base64-encoded by default
// (what the admin UI consumes) or as raw PDF with ?format=pdf.
func (h *Handler) DownloadInvoice(c *gin.Context) {
	locale := c.DefaultQuery("locale", string(i18n.DefaultLocale))
	data, err := h.orders.GenerateInvoice(c.Request.Context(), c.Param("id"), locale)
	if err != nil {
		fail(c, err)
		return
	}

	if c.Query("format") == "pdf" {
		c.Header("Content-Disposition", "attachment; filename=Invoice-"+c.Param("id")+".pdf")
		c.Data(http.StatusOK, "application/pdf", data)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": base64.StdEncoding.EncodeToString(data)})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := req.toDomain("")
	if err := h.products.Create(c.Request.Context(), p); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := req.toDomain(c.Param("id"))
	if err := h.products.Update(c.Request.Context(), p); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ReorderProducts(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.products.Reorder(c.Request.Context(), req.Items); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) AdminListInquiries(c *gin.Context) {
	inquiries, err := h.inquiries.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

func (h *Handler) ReplyInquiry(c *gin.Context) {
	var req ReplyInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.inquiries.Reply(c.Request.Context(), c.Param("id"), req.Answer, &services.ReplyOptions{
		SendEmail:    req.SendEmail,
		EmailSubject: req.EmailSubject,
		EmailContent: req.EmailContent,
		EmailAddress: req.EmailAddress,
	})
	if err != nil {
		fail(c, err)
		return
	}

	resp := gin.H{"success": true, "emailSent": res.EmailSent}
	if res.EmailError != "" {
		resp["error"] = res.EmailError
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteInquiry(c *gin.Context) {
	if err := h.inquiries.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) AdminListPolicies(c *gin.Context) {
	policies, err := h.policies.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, policies)
}

func (h *Handler) UpsertPolicy(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := &domain.Policy{
		Slug:     c.Param("slug"),
		Locale:   c.Param("locale"),
		Title:    req.Title,
		Intro:    req.Intro,
		Sections: req.Sections,
	}
	if err := h.policies.Upsert(c.Request.Context(), p); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
