package memory

import (
	"strings"
	"sync"

	"github.com/jcampos/gestor-api/internal/domain"
	"github.com/jcampos/gestor-api/internal/domain/entity"
	"github.com/jcampos/gestor-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação em memória de UserRepository. Além da coleção mantém
// um índice por email (minúsculo), protegido pelo próprio mutex para que a
// checagem de duplicidade e a inserção sejam um passo só.
type UserRepo struct {
	mu      sync.Mutex
	col     *Collection[entity.User, *entity.User]
	byEmail map[string]int64
}

// NewUserRepository constrói o repositório com a coleção vazia.
func NewUserRepository() *UserRepo {
	return &UserRepo{
		col:     NewCollection[entity.User](),
		byEmail: make(map[string]int64),
	}
}

// GetByEmail busca a conta pelo email; (nil, nil) se não existir.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	id, ok := r.byEmail[strings.ToLower(email)]
	r.mu.Unlock()
	if !ok {
		return nil, nil
	}
	u, ok := r.col.Get(id)
	if !ok {
		return nil, nil
	}
	return u, nil
}

// Create armazena a conta, rejeitando emails repetidos.
func (r *UserRepo) Create(u *entity.User) error {
	key := strings.ToLower(u.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[key]; exists {
		return domain.ErrEmailAlreadyExists
	}
	*u = *r.col.Insert(u)
	r.byEmail[key] = u.ID
	return nil
}
