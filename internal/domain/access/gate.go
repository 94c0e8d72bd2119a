// Package access decide quais operações de gestão de funcionários um ator
// pode executar, a partir exclusivamente do seu nível hierárquico.
package access

// Role nível hierárquico de um funcionário, em ordem total crescente.
type Role string

// Hierarquia de cargos, do mais baixo ao mais alto.
const (
	RoleFuncionario Role = "funcionario"
	RoleTecnico     Role = "tecnico"
	RoleSupervisor  Role = "supervisor"
	RoleCoordenador Role = "coordenador"
	RoleGerente     Role = "gerente"
	RoleDiretor     Role = "diretor"
	RoleAdmin       Role = "admin"
)

// roleLevel posição de cada cargo na ordem total. Cargos desconhecidos não
// aparecem aqui e ficam abaixo de qualquer limiar.
var roleLevel = map[Role]int{
	RoleFuncionario: 0,
	RoleTecnico:     1,
	RoleSupervisor:  2,
	RoleCoordenador: 3,
	RoleGerente:     4,
	RoleDiretor:     5,
	RoleAdmin:       6,
}

// Roles devolve os cargos válidos em ordem crescente.
func Roles() []Role {
	return []Role{
		RoleFuncionario, RoleTecnico, RoleSupervisor,
		RoleCoordenador, RoleGerente, RoleDiretor, RoleAdmin,
	}
}

// Valid informa se o cargo é um dos sete níveis definidos.
func (r Role) Valid() bool {
	_, ok := roleLevel[r]
	return ok
}

// AtLeast informa se r está no nível de min ou acima na hierarquia.
// Cargos desconhecidos nunca alcançam limiar algum.
func (r Role) AtLeast(min Role) bool {
	lr, ok := roleLevel[r]
	if !ok {
		return false
	}
	lm, ok := roleLevel[min]
	if !ok {
		return false
	}
	return lr >= lm
}

// Action operação de gestão de funcionários sujeita ao gate.
type Action string

const (
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// actionThreshold cargo mínimo exigido por ação. Não há exceção por recurso:
// a decisão depende apenas do cargo do ator e da ação.
var actionThreshold = map[Action]Role{
	ActionCreate: RoleSupervisor,
	ActionEdit:   RoleSupervisor,
	ActionDelete: RoleGerente,
}

// CanPerform decide se o ator com o cargo dado pode executar a ação.
// Ações desconhecidas são sempre negadas.
func CanPerform(actor Role, action Action) bool {
	min, ok := actionThreshold[action]
	if !ok {
		return false
	}
	return actor.AtLeast(min)
}
