package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"shop-service/internal/domain"
	"shop-service/internal/i18n"

	"github.com/jung-kurt/gofpdf"
)

const fontFamily = "invoice"

// Renderer produces the order confirmation / invoice document. A UTF-8 TTF
// (fontPath) is required for Hangul output; without one the renderer falls
// back to Helvetica and English labels.
type Renderer struct {
	fontPath string
}

func NewRenderer(fontPath string) *Renderer {
	return &Renderer{fontPath: fontPath}
}

func (r *Renderer) Generate(order *domain.Order, dict i18n.Dictionary) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("pdf: nil order")
	}

	labels := dict.Invoice
	doc := gofpdf.New("P", "mm", "A4", "")

	family := "Helvetica"
	if r.fontPath != "" {
		doc.AddUTF8Font(fontFamily, "", r.fontPath)
		doc.AddUTF8Font(fontFamily, "B", r.fontPath)
		family = fontFamily
	} else if dict.Locale != i18n.LocaleEn {
		// Core fonts cannot encode Hangul.
		labels = i18n.GetDictionary(string(i18n.LocaleEn)).Invoice
	}

	doc.AddPage()

	doc.SetFont(family, "B", 18)
	doc.CellFormat(0, 12, labels.Title, "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetFont(family, "", 10)
	email := "-"
	if order.CustomerEmail != nil && *order.CustomerEmail != "" {
		email = *order.CustomerEmail
	}
	address := order.Address
	if order.DetailAddress != nil && *order.DetailAddress != "" {
		address += " " + *order.DetailAddress
	}
	infoRow(doc, family, labels.OrderNo, order.ID)
	infoRow(doc, family, labels.Date, order.CreatedAt.Format("2006-01-02"))
	infoRow(doc, family, labels.Customer, order.CustomerName)
	infoRow(doc, family, labels.Email, email)
	infoRow(doc, family, labels.Phone, order.CustomerPhone)
	infoRow(doc, family, labels.Address, address)
	doc.Ln(8)

	doc.SetFont(family, "B", 10)
	doc.CellFormat(110, 8, labels.ItemName, "B", 0, "L", false, 0, "")
	doc.CellFormat(20, 8, labels.Quantity, "B", 0, "C", false, 0, "")
	doc.CellFormat(60, 8, labels.UnitPrice, "B", 1, "R", false, 0, "")

	doc.SetFont(family, "", 10)
	var subtotal int64
	for _, item := range order.Items {
		subtotal += item.Price * item.Quantity
		doc.CellFormat(110, 8, item.ProductTitle, "B", 0, "L", false, 0, "")
		doc.CellFormat(20, 8, strconv.FormatInt(item.Quantity, 10), "B", 0, "C", false, 0, "")
		doc.CellFormat(60, 8, currency(labels, item.Price), "B", 1, "R", false, 0, "")
	}
	shippingFee := order.TotalAmount - subtotal
	doc.Ln(8)

	doc.CellFormat(0, 6, labels.Subtotal+": "+currency(labels, subtotal), "", 1, "R", false, 0, "")
	doc.CellFormat(0, 6, labels.ShippingFee+": "+currency(labels, shippingFee), "", 1, "R", false, 0, "")
	doc.SetFont(family, "B", 13)
	doc.CellFormat(0, 10, labels.GrandTotal+": "+currency(labels, order.TotalAmount), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func infoRow(doc *gofpdf.Fpdf, family, label, value string) {
	doc.SetFont(family, "B", 10)
	doc.CellFormat(35, 7, label+":", "", 0, "L", false, 0, "")
	doc.SetFont(family, "", 10)
	doc.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func currency(labels i18n.InvoiceLabels, amount int64) string {
	return fmt.Sprintf(labels.CurrencyFmt, groupDigits(amount))
}

func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
