package utils

import (
	"strings"
	"unicode/utf8"
)

// RuleWidth é a largura das linhas separadoras dos relatórios
const RuleWidth = 80

// Rule repete o caractere até a largura padrão do relatório
func Rule(char string) string {
	return strings.Repeat(char, RuleWidth)
}

// Center centraliza s em width colunas usando fill. A sobra ímpar fica à direita.
func Center(s string, width int, fill string) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}

	pad := width - n
	left := pad / 2

	return strings.Repeat(fill, left) + s + strings.Repeat(fill, pad-left)
}

// FirstNonEmpty retorna o primeiro valor não vazio, na ordem recebida.
// Usado para campos alternativos (high_performer/top_performer, expected_cpa/expected_ctr).
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
