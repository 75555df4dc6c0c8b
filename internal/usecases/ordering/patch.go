package ordering

import (
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/vfg2006/seller-console/internal/domain"
)

// orderPatch é o contrato tipado dos campos que o servidor pode devolver em
// uma atualização de status. Campos fora deste esquema são ignorados em vez
// de espalhados às cegas sobre o estado local.
type orderPatch struct {
	Status         *domain.OrderStatus `mapstructure:"status"`
	TrackingNumber *string             `mapstructure:"trackingNumber"`
	InvoiceNumber  *string             `mapstructure:"invoiceNumber"`
	Amount         *float64            `mapstructure:"amount"`
	CreatedAt      *time.Time          `mapstructure:"createdAt"`
}

func decodeOrderPatch(partial map[string]any) (*orderPatch, error) {
	patch := &orderPatch{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     patch,
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar o decoder do patch")
	}

	if err := decoder.Decode(partial); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o patch do pedido")
	}
	return patch, nil
}

// applyTo mescla apenas os campos presentes na resposta, substituindo o
// palpite otimista pelos valores autoritativos do servidor.
func (p *orderPatch) applyTo(o *domain.Order) {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.TrackingNumber != nil {
		o.TrackingNumber = *p.TrackingNumber
	}
	if p.InvoiceNumber != nil {
		o.InvoiceNumber = *p.InvoiceNumber
	}
	if p.Amount != nil {
		o.Amount = *p.Amount
	}
	if p.CreatedAt != nil {
		o.CreatedAt = *p.CreatedAt
	}
}
