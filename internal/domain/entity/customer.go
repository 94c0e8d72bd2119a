package entity

// Customer representa um cliente da empresa.
type Customer struct {
	Base
	Name     string
	Document string // CPF ou CNPJ em forma canônica (apenas dígitos), sempre válido
	Email    string
	Phone    string
}
