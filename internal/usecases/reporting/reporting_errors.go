package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para a análise de campanhas
var (
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrCampaignSource    = errors.New("error fetching campaign insights")
	ErrInvalidAggregate  = errors.New("no conversions recorded")
	ErrInvalidLookback   = errors.New("date value out of range")
)

// ReportError é um erro com contexto adicional da análise
type ReportError struct {
	Err       error  // Erro base
	Code      string // Código de erro da CLI
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// ErrorCode implementa cliErrors.Coder
func (e *ReportError) ErrorCode() string {
	return e.Code
}

// NewReportError cria um novo ReportError
func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewReportErrorWithID cria um novo ReportError com ID da conta
func NewReportErrorWithID(err error, code string, accountID string, details string) *ReportError {
	return &ReportError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
