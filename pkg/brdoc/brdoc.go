// Package brdoc valida documentos fiscais brasileiros (CPF e CNPJ) pelo
// algoritmo módulo 11 de dígitos verificadores da Receita Federal.
package brdoc

// Tamanhos canônicos (apenas dígitos).
const (
	cpfLength  = 11
	cnpjLength = 14
)

// Pesos para os dígitos verificadores do CNPJ, aplicados da esquerda para a
// direita sobre os 12 (primeiro DV) e 13 (segundo DV) primeiros dígitos.
var (
	cnpjFirstWeights  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Clean remove tudo que não for dígito ASCII, devolvendo a forma canônica do
// documento ("111.444.777-35" -> "11144477735"). Dígitos de outros alfabetos
// ('٠', '０') são descartados como qualquer outra pontuação: a forma canônica
// contém exclusivamente '0'..'9'.
func Clean(doc string) string {
	out := make([]byte, 0, len(doc))
	for _, r := range doc {
		if r >= '0' && r <= '9' {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// IsValidCPF informa se o texto contém um CPF com dígitos verificadores
// corretos. Pontuação e espaços são ignorados; entrada malformada retorna
// false, nunca erro.
func IsValidCPF(doc string) bool {
	digits := Clean(doc)
	if len(digits) != cpfLength || allSameDigit(digits) {
		return false
	}
	// Primeiro DV: pesos 10..2 sobre os 9 primeiros dígitos.
	var sum int
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	if checkDigit(sum) != int(digits[9]-'0') {
		return false
	}
	// Segundo DV: pesos 11..2 sobre os 10 primeiros (inclui o primeiro DV).
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	return checkDigit(sum) == int(digits[10]-'0')
}

// IsValidCNPJ informa se o texto contém um CNPJ com dígitos verificadores
// corretos. Mesmo contrato do IsValidCPF: limpa a entrada e nunca retorna erro.
func IsValidCNPJ(doc string) bool {
	digits := Clean(doc)
	if len(digits) != cnpjLength || allSameDigit(digits) {
		return false
	}
	var sum int
	for i, w := range cnpjFirstWeights {
		sum += int(digits[i]-'0') * w
	}
	if checkDigit(sum) != int(digits[12]-'0') {
		return false
	}
	sum = 0
	for i, w := range cnpjSecondWeights {
		sum += int(digits[i]-'0') * w
	}
	return checkDigit(sum) == int(digits[13]-'0')
}

// IsValidDocument aceita CPF ou CNPJ válidos; é o predicado usado na escrita
// de clientes.
func IsValidDocument(doc string) bool {
	return IsValidCPF(doc) || IsValidCNPJ(doc)
}

// checkDigit aplica a regra do módulo 11: resto < 2 -> 0, senão 11 - resto.
func checkDigit(sum int) int {
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

// allSameDigit detecta sequências como "00000000000", que passam no módulo 11
// mas não são documentos emitidos.
func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
