// Package entity contém o modelo de domínio da aplicação.
package entity

import "time"

// Base campos comuns a todo registro armazenado: identificador sequencial por
// coleção e instante de criação, ambos atribuídos pelo repositório e imutáveis
// depois disso.
type Base struct {
	ID        int64
	CreatedAt time.Time
}

// Identity devolve o ID e o CreatedAt armazenados.
func (b *Base) Identity() (int64, time.Time) {
	return b.ID, b.CreatedAt
}

// Stamp grava ID e CreatedAt. Uso exclusivo do repositório, na criação e na
// restauração dos campos imutáveis após um merge.
func (b *Base) Stamp(id int64, createdAt time.Time) {
	b.ID = id
	b.CreatedAt = createdAt
}
