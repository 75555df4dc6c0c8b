// Package session guarda o token de sessão do vendedor. É o único estado
// persistido pelo console além de nada: sem expiração local, sem metadados.
// O servidor é a única autoridade sobre a validade do token, comunicada via 401.
package session

// Store abstrai o armazenamento do token de sessão. Implementações precisam
// ser seguras para uso concorrente: o token pode ser limpo pelo interceptor de
// respostas do cliente HTTP enquanto outra chamada em voo o lê.
type Store interface {
	// Get retorna o token atual e se ele está presente.
	Get() (string, bool)
	// Set grava um novo token, substituindo o anterior.
	Set(token string) error
	// Clear remove o token. Chamado no logout e em qualquer resposta 401.
	Clear() error
}
