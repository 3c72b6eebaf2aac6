package loading

import (
	"fmt"
	"strings"
)

// FormatError indica que o cabeçalho do arquivo de entrada não corresponde ao
// conjunto fixo de colunas esperado. É fatal: aborta o carregamento.
type FormatError struct {
	Missing []string
	Extra   []string
}

func (e *FormatError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("colunas ausentes: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("colunas inesperadas: %s", strings.Join(e.Extra, ", ")))
	}
	return fmt.Sprintf("formato de arquivo inválido (%s)", strings.Join(parts, "; "))
}

// ParseError indica que um campo numérico obrigatório não pôde ser convertido.
// retail_sales não gera ParseError: valor inválido vira NULL e a regra (a) da
// limpeza remove a linha.
type ParseError struct {
	Line   int
	Column string
	Value  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("valor inválido na linha %d, coluna %s: %q", e.Line, e.Column, e.Value)
}
