// Package report escreve os resultados das ferramentas em texto, JSON ou YAML.
package report

import (
	"fmt"
	"io"

	"github.com/vfg2006/ads-advisor/internal/config"
	"github.com/vfg2006/ads-advisor/pkg/cliErrors"
	"github.com/vfg2006/ads-advisor/pkg/utils"
	"gopkg.in/yaml.v3"
)

// TextWriter escreve o relatório legível de um resultado
type TextWriter[T any] func(w io.Writer, result T) error

// Write escreve result no formato pedido. O formato texto usa text; json e yaml serializam o próprio resultado.
func Write[T any](w io.Writer, format string, result T, text TextWriter[T]) error {
	switch format {
	case config.OutputText, "":
		return text(w, result)
	case config.OutputJSON:
		out, err := utils.PrettyJson(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	}

	return cliErrors.WithCode(
		fmt.Errorf("invalid output format %q (expected text, json or yaml)", format),
		cliErrors.ErrInvalidFormat,
	)
}
