package domain

import "time"

// OrderStatus é o conjunto fechado de status aceitos pela API da Astro.
// O console nunca envia um valor fora deste conjunto.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCanceled   OrderStatus = "Canceled"
)

// ValidStatuses lista os status na ordem exibida pelo console.
var ValidStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCanceled,
}

// IsValid verifica se o status pertence ao conjunto aceito.
func (s OrderStatus) IsValid() bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

type OrderProduct struct {
	Name  string  `json:"name" mapstructure:"name"`
	Price float64 `json:"price" mapstructure:"price"`
}

type OrderBuyer struct {
	Email string `json:"email" mapstructure:"email"`
}

// Order é o DTO de pedido recebido da API da Astro. O console mantém apenas
// uma cópia transitória em memória para renderização; o estado canônico vive
// no servidor.
type Order struct {
	ID              int          `json:"id" mapstructure:"id"`
	Product         OrderProduct `json:"product" mapstructure:"product"`
	Buyer           OrderBuyer   `json:"buyer" mapstructure:"buyer"`
	Quantity        int          `json:"quantity" mapstructure:"quantity"`
	Amount          float64      `json:"amount" mapstructure:"amount"`
	Status          OrderStatus  `json:"status" mapstructure:"status"`
	ShippingAddress string       `json:"shippingAddress" mapstructure:"shippingAddress"`
	TrackingNumber  string       `json:"trackingNumber,omitempty" mapstructure:"trackingNumber"`
	InvoiceNumber   string       `json:"invoiceNumber,omitempty" mapstructure:"invoiceNumber"`
	CreatedAt       time.Time    `json:"createdAt" mapstructure:"createdAt"`
}

// Invoice é a resposta de geração de fatura para um pedido entregue.
type Invoice struct {
	OrderID       int    `json:"orderId"`
	InvoiceNumber string `json:"invoiceNumber"`
	URL           string `json:"url,omitempty"`
}
