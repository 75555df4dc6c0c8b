package domain

// SalesPoint é um ponto da série de vendas recentes.
type SalesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// EarningsPoint é um ponto da série de ganhos mensais.
type EarningsPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// DashboardSummary agrega os contadores e séries exibidos no painel do
// vendedor. É somente leitura: recalculado no servidor e buscado a cada
// ativação da view.
type DashboardSummary struct {
	TotalSales      int             `json:"totalSales"`
	PendingOrders   int             `json:"pendingOrders"`
	TotalEarnings   float64         `json:"totalEarnings"`
	RecentSales     []SalesPoint    `json:"recentSales"`
	MonthlyEarnings []EarningsPoint `json:"monthlyEarnings"`
}
