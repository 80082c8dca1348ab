// Package docbr valida e formata documentos fiscais brasileiros (CPF e CNPJ)
// pelo algoritmo módulo 11 de dois dígitos verificadores da Receita Federal.
package docbr

import (
	"fmt"
	"unicode"

	"github.com/ascendtech/locacao-pro/internal/domain"
	"github.com/ascendtech/locacao-pro/internal/domain/entity"
)

// pesos do segundo bloco do CNPJ; o primeiro bloco usa os mesmos pesos sem o 6 inicial.
var cnpjWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// FormatCPF valida o CPF (com ou sem pontuação) e devolve a forma canônica
// mascarada 000.000.000-00. Retorna domain.ErrInvalidDocument para tamanho
// errado, dígitos repetidos ou dígito verificador incorreto.
func FormatCPF(raw string) (string, error) {
	digits := extractDigits(raw)
	if len(digits) != 11 {
		return "", fmt.Errorf("docbr: CPF deve ter 11 dígitos, recebidos %d: %w", len(digits), domain.ErrInvalidDocument)
	}
	if allSame(digits) {
		return "", fmt.Errorf("docbr: CPF com todos os dígitos iguais: %w", domain.ErrInvalidDocument)
	}
	if cpfCheckDigit(digits[:9], 10) != digits[9] || cpfCheckDigit(digits[:10], 11) != digits[10] {
		return "", fmt.Errorf("docbr: dígito verificador do CPF incorreto: %w", domain.ErrInvalidDocument)
	}
	return fmt.Sprintf("%s.%s.%s-%s", digits[0:3], digits[3:6], digits[6:9], digits[9:11]), nil
}

// FormatCNPJ valida o CNPJ e devolve a forma canônica 00.000.000/0000-00.
func FormatCNPJ(raw string) (string, error) {
	digits := extractDigits(raw)
	if len(digits) != 14 {
		return "", fmt.Errorf("docbr: CNPJ deve ter 14 dígitos, recebidos %d: %w", len(digits), domain.ErrInvalidDocument)
	}
	if allSame(digits) {
		return "", fmt.Errorf("docbr: CNPJ com todos os dígitos iguais: %w", domain.ErrInvalidDocument)
	}
	if cnpjCheckDigit(digits[:12]) != digits[12] || cnpjCheckDigit(digits[:13]) != digits[13] {
		return "", fmt.Errorf("docbr: dígito verificador do CNPJ incorreto: %w", domain.ErrInvalidDocument)
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", digits[0:2], digits[2:5], digits[5:8], digits[8:12], digits[12:14]), nil
}

// FormatDocumento despacha para CPF ou CNPJ conforme o tipo de pessoa.
func FormatDocumento(raw, personType string) (string, error) {
	switch personType {
	case entity.PersonTypeIndividual:
		return FormatCPF(raw)
	case entity.PersonTypeCompany:
		return FormatCNPJ(raw)
	}
	return "", fmt.Errorf("docbr: tipo de pessoa desconhecido %q: %w", personType, domain.ErrInvalidInput)
}

// cpfCheckDigit calcula um dígito verificador do CPF: pesos decrescentes a
// partir de firstWeight (10 para o primeiro dígito, 11 para o segundo),
// resto módulo 11, resultado 0 quando o resto é menor que 2.
func cpfCheckDigit(base []byte, firstWeight int) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * (firstWeight - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

// cnpjCheckDigit calcula um dígito verificador do CNPJ sobre 12 ou 13 dígitos.
func cnpjCheckDigit(base []byte) byte {
	offset := len(cnpjWeights) - len(base)
	var sum int
	for i, d := range base {
		sum += int(d-'0') * cnpjWeights[i+offset]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func allSame(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// ExtractDigits devolve apenas os dígitos de s, na ordem.
func ExtractDigits(s string) string {
	return string(extractDigits(s))
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
