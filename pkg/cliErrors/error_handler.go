package cliErrors

import (
	"errors"
	"fmt"
	"io"
)

// Códigos de erro das ferramentas de linha de comando
const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Argumentos inválidos
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de saída inválido

	// Erros de cálculo
	ErrInvalidAggregate = "CALC_001" // Agregado indefinido (ex.: divisão por zero)

	// Erros de infraestrutura
	ErrCampaignSource = "SRC_001" // Falha ao obter campanhas
	ErrConfiguration  = "CFG_001" // Falha ao carregar configuração
	ErrInternal       = "INT_001" // Erro interno
)

// ExitFailure é o código de saída de qualquer falha; todas as falhas colapsam no mesmo status
const ExitFailure = 1

// Coder é implementado por erros que carregam um código próprio
type Coder interface {
	ErrorCode() string
}

// CLIError representa um erro padronizado de uma ferramenta
type CLIError struct {
	Code      string `json:"code"`
	Operation string `json:"operation"`
	Message   string `json:"message"`
}

func (e CLIError) Error() string {
	return fmt.Sprintf("Error %s: %s", e.Operation, e.Message)
}

// CodeOf retorna o código do primeiro erro da cadeia que implementa Coder
func CodeOf(err error) string {
	var coder Coder
	if errors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ErrInternal
}

// FromError cria um CLIError a partir de um erro Go, identificando a operação que falhou
func FromError(err error, operation string) CLIError {
	if err == nil {
		return CLIError{
			Code:      ErrInternal,
			Operation: operation,
			Message:   "unknown error",
		}
	}

	return CLIError{
		Code:      CodeOf(err),
		Operation: operation,
		Message:   err.Error(),
	}
}

// WriteError escreve uma única linha de erro no destino (normalmente stderr)
func WriteError(w io.Writer, operation string, err error) CLIError {
	cliErr := FromError(err, operation)
	fmt.Fprintln(w, cliErr.Error())
	return cliErr
}

// codedError associa um código a um erro que não carrega código próprio
type codedError struct {
	err  error
	code string
}

func (e *codedError) Error() string     { return e.err.Error() }
func (e *codedError) Unwrap() error     { return e.err }
func (e *codedError) ErrorCode() string { return e.code }

// WithCode anexa um código ao erro. Retorna nil se err for nil.
func WithCode(err error, code string) error {
	if err == nil {
		return nil
	}
	return &codedError{err: err, code: code}
}
