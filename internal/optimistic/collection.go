// Package optimistic implementa o padrão de mutação otimista usado pelas
// views apoiadas em lista: a escrita local acontece antes da chamada de rede
// e é desfeita com o snapshot exato caso a chamada falhe. Não é um log de
// transações: existe no máximo um snapshot de rollback por entidade.
package optimistic

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound indica que o alvo da mutação não existe na coleção local.
	ErrNotFound = errors.New("entidade não encontrada na coleção local")
	// ErrMutationInFlight indica que a entidade já tem uma mutação pendente.
	// Uma segunda mutação concorrente sobre a mesma entidade capturaria como
	// snapshot um estado otimista ainda não confirmado, então é recusada.
	ErrMutationInFlight = errors.New("já existe uma mutação pendente para esta entidade")
)

// Collection guarda a cópia transitória de uma coleção de entidades para
// renderização. T deve ter semântica de valor: o snapshot de rollback é uma
// cópia do elemento.
type Collection[T any] struct {
	mu       sync.RWMutex
	items    []T
	key      func(T) int
	inflight map[int]struct{}
}

func NewCollection[T any](key func(T) int) *Collection[T] {
	return &Collection[T]{
		key:      key,
		inflight: make(map[int]struct{}),
	}
}

// Replace substitui a coleção inteira, tipicamente após um refetch.
// Snapshots pendentes continuam válidos: rollback e commit operam por chave.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
}

// Items devolve uma cópia da coleção na ordem corrente.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get busca a entidade pela chave.
func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Remove tira a entidade da coleção. Usado quando o servidor confirma uma
// exclusão.
func (c *Collection[T]) Remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// Update aplica uma alteração direta, sem snapshot. Para alterações que
// precisam de rollback, use Begin.
func (c *Collection[T]) Update(id int, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	fn(&c.items[i])
	return true
}

// Begin captura o snapshot de rollback e aplica a escrita otimista, tornando
// a alteração visível à view antes da confirmação de rede. Falha com
// ErrNotFound se a entidade não existe e com ErrMutationInFlight se já houver
// mutação pendente para ela; em ambos os casos nada é alterado.
func (c *Collection[T]) Begin(id int, mutate func(*T)) (*Mutation[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	if _, busy := c.inflight[id]; busy {
		return nil, ErrMutationInFlight
	}

	snapshot := c.items[i]
	mutate(&c.items[i])
	c.inflight[id] = struct{}{}

	return &Mutation[T]{collection: c, id: id, snapshot: snapshot}, nil
}

// indexOf pressupõe o lock já adquirido.
func (c *Collection[T]) indexOf(id int) int {
	for i, item := range c.items {
		if c.key(item) == id {
			return i
		}
	}
	return -1
}

// Mutation é uma mutação otimista pendente. Exatamente um entre Commit e
// Rollback deve ser chamado depois que a chamada de rede correspondente se
// resolve.
type Mutation[T any] struct {
	collection *Collection[T]
	id         int
	snapshot   T
	settled    bool
}

// Snapshot devolve o estado pré-mutação capturado.
func (m *Mutation[T]) Snapshot() T {
	return m.snapshot
}

// Commit mescla os campos autoritativos da resposta do servidor na entidade,
// substituindo o palpite otimista, e libera a entidade para novas mutações.
func (m *Mutation[T]) Commit(merge func(*T)) {
	m.settle(func(c *Collection[T]) {
		if i := c.indexOf(m.id); i >= 0 && merge != nil {
			merge(&c.items[i])
		}
	})
}

// Rollback restaura o snapshot exato capturado no Begin.
func (m *Mutation[T]) Rollback() {
	m.settle(func(c *Collection[T]) {
		if i := c.indexOf(m.id); i >= 0 {
			c.items[i] = m.snapshot
		}
	})
}

func (m *Mutation[T]) settle(apply func(*Collection[T])) {
	m.collection.mu.Lock()
	defer m.collection.mu.Unlock()

	if m.settled {
		return
	}
	m.settled = true

	apply(m.collection)
	delete(m.collection.inflight, m.id)
}
