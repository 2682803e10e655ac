package pdf

import (
	"shop-service/internal/domain"
	"shop-service/internal/i18n"
)

type RendererInterface interface {
	Generate(order *domain.Order, dict i18n.Dictionary) ([]byte, error)
}

var _ RendererInterface = (*Renderer)(nil)
