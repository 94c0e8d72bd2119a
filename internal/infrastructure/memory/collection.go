// Package memory implementa os repositórios de domínio sobre coleções em
// memória de processo. Nada é persistido entre restarts: essa é uma decisão
// de escopo da aplicação, não uma limitação a corrigir.
package memory

import (
	"sync"
	"time"
)

// record é satisfeito pelos ponteiros de entidade que embutem entity.Base.
type record[T any] interface {
	*T
	Identity() (int64, time.Time)
	Stamp(id int64, createdAt time.Time)
}

// Collection coleção genérica de uma espécie de entidade: mapa por ID, ordem
// de inserção e contador monotônico próprio iniciado em 1. IDs nunca são
// reemitidos, nem depois de remoções.
//
// Um único mutex protege contador e mapa; escritas o seguram pelo
// read-modify-write inteiro, leituras podem correr em paralelo entre si.
type Collection[T any, PT record[T]] struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]T
	order []int64
	now   func() time.Time
}

// NewCollection cria uma coleção vazia. Instâncias são independentes: cada
// chamador recebe e segura a sua referência, sem singleton de pacote.
func NewCollection[T any, PT record[T]]() *Collection[T, PT] {
	return &Collection[T, PT]{
		items: make(map[int64]T),
		now:   time.Now,
	}
}

// List devolve cópias de todos os registros em ordem de inserção.
func (c *Collection[T, PT]) List() []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		v := c.items[id]
		out = append(out, &v)
	}
	return out
}

// Get devolve uma cópia do registro, ou false se o ID não existir.
func (c *Collection[T, PT]) Get(id int64) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	if !ok {
		return nil, false
	}
	return &v, true
}

// Insert atribui o próximo ID da coleção, carimba CreatedAt com o instante
// atual e armazena. Devolve o registro completo.
func (c *Collection[T, PT]) Insert(v *T) *T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	PT(v).Stamp(c.seq, c.now())

	c.items[c.seq] = *v
	c.order = append(c.order, c.seq)

	stored := c.items[c.seq]
	return &stored
}

// Apply executa o merge parcial sobre uma cópia do registro armazenado, sob o
// mesmo lock da escrita. ID e CreatedAt são restaurados depois do merge, de
// modo que nenhuma atualização consegue alterá-los. Devolve false se o ID não
// existir.
func (c *Collection[T, PT]) Apply(id int64, fn func(*T)) (*T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, ok := c.items[id]
	if !ok {
		return nil, false
	}

	origID, origCreatedAt := PT(&stored).Identity()
	fn(&stored)
	PT(&stored).Stamp(origID, origCreatedAt)

	c.items[id] = stored
	out := stored
	return &out, true
}

// Remove apaga o registro. Devolve true se ele existia; o ID fica
// permanentemente aposentado porque o contador nunca retrocede.
func (c *Collection[T, PT]) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Len devolve a cardinalidade atual.
func (c *Collection[T, PT]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
