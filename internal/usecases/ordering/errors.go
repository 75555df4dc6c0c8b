package ordering

import (
	"errors"

	"github.com/vfg2006/seller-console/internal/optimistic"
)

var (
	// ErrInvalidStatus indica um status fora do conjunto aceito. A seleção no
	// console é fechada, então isto só acontece com requisições montadas à mão.
	ErrInvalidStatus = errors.New("status de pedido inválido")

	// Reexportados para que as views não dependam do pacote optimistic.
	ErrOrderNotFound    = optimistic.ErrNotFound
	ErrMutationInFlight = optimistic.ErrMutationInFlight
)
