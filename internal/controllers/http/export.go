package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportOrders streams the full order list as an xlsx download.
func (h *Handler) ExportOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context(), nil)
	if err != nil {
		fail(c, err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
		return
	}

	headers := []string{
		"ID", "Customer", "Email", "Phone", "Address", "Items",
		"TotalAmount", "Status", "Carrier", "TrackingNumber", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, hd := range headers {
		headerRow.AddCell().SetValue(hd)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(deref(o.CustomerEmail))
		row.AddCell().SetValue(o.CustomerPhone)

		address := o.Address
		if d := deref(o.DetailAddress); d != "" {
			address += " " + d
		}
		row.AddCell().SetValue(address)

		var items []string
		for _, it := range o.Items {
			items = append(items, it.ProductTitle+" x"+strconv.FormatInt(it.Quantity, 10))
		}
		row.AddCell().SetValue(strings.Join(items, ", "))

		row.AddCell().SetValue(o.TotalAmount)
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(deref(o.Carrier))
		row.AddCell().SetValue(deref(o.TrackingNumber))
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		return
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
