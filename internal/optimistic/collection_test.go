package optimistic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID     int
	Status string
	Note   string
}

func newTestCollection(items ...item) *Collection[item] {
	c := NewCollection(func(i item) int { return i.ID })
	c.Replace(items)
	return c
}

func TestCollection_Begin(t *testing.T) {
	tests := []struct {
		name     string
		target   int
		setup    func(c *Collection[item])
		wantErr  error
		validate func(t *testing.T, c *Collection[item], m *Mutation[item])
	}{
		{
			name:   "Escrita otimista visível antes da confirmação",
			target: 1,
			validate: func(t *testing.T, c *Collection[item], m *Mutation[item]) {
				got, ok := c.Get(1)
				require.True(t, ok)
				assert.Equal(t, "Shipped", got.Status)
				assert.Equal(t, "Pending", m.Snapshot().Status)
			},
		},
		{
			name:    "Entidade inexistente não altera nada",
			target:  99,
			wantErr: ErrNotFound,
		},
		{
			name:   "Segunda mutação sobre a mesma entidade é recusada",
			target: 1,
			setup: func(c *Collection[item]) {
				_, err := c.Begin(1, func(i *item) { i.Status = "Processing" })
				require.NoError(t, err)
			},
			wantErr: ErrMutationInFlight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCollection(
				item{ID: 1, Status: "Pending"},
				item{ID: 2, Status: "Delivered"},
			)
			if tt.setup != nil {
				tt.setup(c)
			}

			m, err := c.Begin(tt.target, func(i *item) { i.Status = "Shipped" })
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.validate(t, c, m)
		})
	}
}

func TestMutation_RollbackRestauraSnapshotExato(t *testing.T) {
	c := newTestCollection(item{ID: 1, Status: "Pending", Note: "original"})

	m, err := c.Begin(1, func(i *item) {
		i.Status = "Shipped"
		i.Note = "otimista"
	})
	require.NoError(t, err)

	m.Rollback()

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Pending", got.Status)
	assert.Equal(t, "original", got.Note)

	// A entidade volta a aceitar mutações.
	_, err = c.Begin(1, func(i *item) { i.Status = "Processing" })
	assert.NoError(t, err)
}

func TestMutation_CommitMesclaRespostaDoServidor(t *testing.T) {
	c := newTestCollection(item{ID: 1, Status: "Pending"})

	m, err := c.Begin(1, func(i *item) { i.Status = "Shipped" })
	require.NoError(t, err)

	// O servidor confirma com um campo extra que o palpite não tinha.
	m.Commit(func(i *item) { i.Note = "TRK1" })

	got, _ := c.Get(1)
	assert.Equal(t, "Shipped", got.Status)
	assert.Equal(t, "TRK1", got.Note)

	_, err = c.Begin(1, func(i *item) { i.Status = "Delivered" })
	assert.NoError(t, err, "commit deve liberar a entidade")
}

func TestMutation_SettleIdempotente(t *testing.T) {
	c := newTestCollection(item{ID: 1, Status: "Pending"})

	m, err := c.Begin(1, func(i *item) { i.Status = "Shipped" })
	require.NoError(t, err)

	m.Commit(nil)
	// Rollback depois do commit não pode desfazer o estado confirmado.
	m.Rollback()

	got, _ := c.Get(1)
	assert.Equal(t, "Shipped", got.Status)
}

func TestCollection_ReplaceNaoInvalidaMutacaoPendente(t *testing.T) {
	c := newTestCollection(item{ID: 1, Status: "Pending"})

	m, err := c.Begin(1, func(i *item) { i.Status = "Shipped" })
	require.NoError(t, err)

	// Refetch no meio da mutação.
	c.Replace([]item{{ID: 1, Status: "Shipped"}, {ID: 2, Status: "Pending"}})

	m.Rollback()

	got, _ := c.Get(1)
	assert.Equal(t, "Pending", got.Status, "rollback opera por chave sobre a coleção corrente")
}

func TestCollection_RemoveEUpdate(t *testing.T) {
	c := newTestCollection(item{ID: 1}, item{ID: 2})

	assert.True(t, c.Update(2, func(i *item) { i.Status = "ativo" }))
	got, _ := c.Get(2)
	assert.Equal(t, "ativo", got.Status)

	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1))
	assert.Len(t, c.Items(), 1)
}
