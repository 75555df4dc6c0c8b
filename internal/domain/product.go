package domain

// Product é o DTO de produto da API da Astro. A sequência de imagens é
// ordenada: a primeira URL é a imagem de capa do anúncio.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice,omitempty"`
	Category      string   `json:"category"`
	Stock         int      `json:"stock"`
	Images        []string `json:"images"`
	IsActive      bool     `json:"isActive"`
}

// NewProduct carrega os campos enviados na criação de um produto. As URLs de
// imagem são sempre as URLs duráveis devolvidas pelo upload, nunca as
// referências locais de preview.
type NewProduct struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
}

// ProductPricing são os únicos campos editáveis inline na listagem.
type ProductPricing struct {
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}
