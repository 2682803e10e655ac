package i18n

import "shop-service/internal/domain"

type Locale string

const (
	LocaleKo Locale = "ko"
	LocaleEn Locale = "en"

	DefaultLocale = LocaleKo
)

// InvoiceLabels are the strings the PDF renderer prints. Each locale carries
// a full set; field access is compile-time checked.
type InvoiceLabels struct {
	Title       string
	OrderNo     string
	Date        string
	Customer    string
	Email       string
	Phone       string
	Address     string
	ItemName    string
	Quantity    string
	UnitPrice   string
	Subtotal    string
	ShippingFee string
	GrandTotal  string
	CurrencyFmt string
}

// EmailLabels hold the order confirmation templates. The fmt verbs are part
// of the contract: subject takes the shop name, greeting the customer name,
// orderNo the order id, total the formatted amount.
type EmailLabels struct {
	OrderSubject  string
	OrderGreeting string
	OrderNo       string
	OrderTotal    string
}

type Dictionary struct {
	Locale  Locale
	Invoice InvoiceLabels
	Email   EmailLabels
}

var dictionaries = map[Locale]Dictionary{
	LocaleKo: {
		Locale: LocaleKo,
		Invoice: InvoiceLabels{
			Title:       "거 래 명 세 서",
			OrderNo:     "주문번호",
			Date:        "일자",
			Customer:    "주문자",
			Email:       "이메일",
			Phone:       "연락처",
			Address:     "주소",
			ItemName:    "상품명",
			Quantity:    "수량",
			UnitPrice:   "단가",
			Subtotal:    "주문금액",
			ShippingFee: "배송비",
			GrandTotal:  "합계",
			CurrencyFmt: "%s원",
		},
		Email: EmailLabels{
			OrderSubject:  "[%s] 주문이 접수되었습니다",
			OrderGreeting: "%s님, 주문해 주셔서 감사합니다.",
			OrderNo:       "주문번호: %s",
			OrderTotal:    "결제 금액: %s",
		},
	},
	LocaleEn: {
		Locale: LocaleEn,
		Invoice: InvoiceLabels{
			Title:       "INVOICE",
			OrderNo:     "Order No.",
			Date:        "Date",
			Customer:    "Customer",
			Email:       "Email",
			Phone:       "Phone",
			Address:     "Address",
			ItemName:    "Item",
			Quantity:    "Qty",
			UnitPrice:   "Unit Price",
			Subtotal:    "Subtotal",
			ShippingFee: "Shipping",
			GrandTotal:  "Total",
			CurrencyFmt: "%s KRW",
		},
		Email: EmailLabels{
			OrderSubject:  "[%s] Your order has been received",
			OrderGreeting: "Dear %s, thank you for your order.",
			OrderNo:       "Order No.: %s",
			OrderTotal:    "Total: %s",
		},
	},
}

// GetDictionary returns the dictionary for the locale, defaulting to Korean
// for unknown values.
func GetDictionary(locale string) Dictionary {
	if d, ok := dictionaries[Locale(locale)]; ok {
		return d
	}
	return dictionaries[DefaultLocale]
}

func strptr(s string) *string { return &s }

// defaultPolicies mirror the seeded policy pages. They back the public policy
// endpoint when no stored record exists for a slug+locale.
var defaultPolicies = map[string]domain.Policy{
	"privacy/ko": {
		Slug:   "privacy",
		Locale: "ko",
		Title:  "개인정보처리방침",
		Intro:  strptr("누나곰은 고객님의 개인정보를 소중하게 생각합니다."),
		Sections: []domain.PolicySection{
			{Title: "수집하는 개인정보 항목", Content: "주문 또는 문의 시 제공해주시는 정보(성함, 연락처, 주소, 메시지 내용 등)를 수집합니다."},
			{Title: "개인정보의 이용 목적", Content: "수집된 정보는 주문 이행 및 문의 응대를 위해서만 사용되며, 배송을 위한 택배사 제공 외에는 제3자에게 제공되지 않습니다."},
		},
	},
	"privacy/en": {
		Slug:   "privacy",
		Locale: "en",
		Title:  "Privacy Policy",
		Intro:  strptr("Your privacy is important to us. This policy outlines how we handle your personal information."),
		Sections: []domain.PolicySection{
			{Title: "Information We Collect", Content: "We collect information you provide directly to us when you place an order or send an inquiry. This includes your name, phone number, address, and any messages."},
			{Title: "How We Use Information", Content: "We use your information strictly to fulfill your orders and respond to your inquiries. We do not share your information with third parties except for shipping partners to deliver your order."},
		},
	},
	"shipping/ko": {
		Slug:   "shipping",
		Locale: "ko",
		Title:  "배송 및 교환/환불 정책",
		Sections: []domain.PolicySection{
			{Title: "배송 안내", Content: "모든 상품은 등기/택배로 안전하게 배송됩니다.\n기본 배송비는 3,000원이며, 10만원 이상 구매 시 무료배송입니다.\n• 재고 상품: 주문 후 1-2일 이내 발송\n• 주문제작 상품: 제작 기간 5-10일 소요 후 발송"},
			{Title: "교환 및 환불 안내", Content: "핸드메이드 제품 특성상 단순 변심에 의한 교환/환불은 어렵습니다.\n상품 불량의 경우 수령 후 3일 이내 연락 주시면 처리를 도와드립니다.\n주문제작 상품은 교환/환불이 불가능합니다."},
		},
	},
	"shipping/en": {
		Slug:   "shipping",
		Locale: "en",
		Title:  "Shipping & Returns",
		Sections: []domain.PolicySection{
			{Title: "Shipping Information", Content: "We ship all orders via traceable courier service.\nStandard shipping fee is 3,000 KRW. Free shipping on orders over 100,000 KRW.\n• Ready-made items: Dispatched within 1-2 business days.\n• Made-to-order items: Please allow 5-10 business days for crafting before dispatch."},
			{Title: "Returns & Exchanges", Content: "Due to the handmade nature of our products, we generally do not accept returns unless the item is defective.\nIf you receive a defective item, please contact us within 3 days of receipt.\nCustom-made items cannot be returned or exchanged."},
		},
	},
}

// DefaultPolicy returns the bundled fallback page for a slug+locale, if any.
func DefaultPolicy(slug, locale string) (domain.Policy, bool) {
	p, ok := defaultPolicies[slug+"/"+locale]
	return p, ok
}
