package http

import (
	"errors"
	"net/http"

	"shop-service/internal/controllers/ws"
	"shop-service/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	orders    *services.OrderService
	products  *services.ProductService
	inquiries *services.InquiryService
	policies  *services.PolicyService
	auth      *services.AuthService
	dashboard *services.DashboardService
	hub       *ws.Hub
}

func NewHandler(
	orders *services.OrderService,
	products *services.ProductService,
	inquiries *services.InquiryService,
	policies *services.PolicyService,
	auth *services.AuthService,
	dashboard *services.DashboardService,
	hub *ws.Hub,
) *Handler {
	return &Handler{
		orders:    orders,
		products:  products,
		inquiries: inquiries,
		policies:  policies,
		auth:      auth,
		dashboard: dashboard,
		hub:       hub,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/products", h.ListProducts)
	r.GET("/products/:slug", h.GetProduct)
	r.POST("/orders", h.SubmitOrder)
	r.POST("/inquiries", h.SubmitInquiry)
	r.GET("/policies/:slug", h.GetPolicy)

	r.POST("/admin/login", h.Login)
	r.POST("/admin/logout", h.Logout)

	admin := r.Group("/admin", h.RequireAdmin)
	{
		admin.GET("/dashboard", h.Dashboard)

		admin.GET("/orders", h.AdminListOrders)
		admin.GET("/orders/export", h.ExportOrders)
		admin.GET("/orders/feed", h.hub.Handle)
		admin.GET("/orders/:id", h.AdminGetOrder)
		admin.PUT("/orders/:id/status", h.UpdateOrderStatus)
		admin.DELETE("/orders/:id", h.DeleteOrder)
		admin.POST("/orders/:id/email", h.SendOrderEmail)
		admin.GET("/orders/:id/invoice", h.DownloadInvoice)

		admin.POST("/products", h.CreateProduct)
		admin.POST("/products/reorder", h.ReorderProducts)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.GET("/inquiries", h.AdminListInquiries)
		admin.POST("/inquiries/:id/reply", h.ReplyInquiry)
		admin.DELETE("/inquiries/:id", h.DeleteInquiry)

		admin.GET("/policies", h.AdminListPolicies)
		admin.PUT("/policies/:slug/:locale", h.UpsertPolicy)
	}
}

// fail maps service errors to a single user-facing message with the right
// status code.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var stockErr *services.InsufficientStockError
	var missingErr *services.NotFoundError
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrInquiryNotFound),
		errors.Is(err, services.ErrPolicyNotFound):
		status = http.StatusNotFound
	case errors.As(err, &stockErr),
		errors.As(err, &missingErr),
		errors.Is(err, services.ErrInvalidCart),
		errors.Is(err, services.ErrNoItems),
		errors.Is(err, services.ErrInquiryBlocked):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
