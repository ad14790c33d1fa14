package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-advisor/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-advisor/internal/config"
	"github.com/vfg2006/ads-advisor/internal/usecases/reporting"
	"github.com/vfg2006/ads-advisor/pkg/cliErrors"
	"github.com/vfg2006/ads-advisor/pkg/log"
)

// Operações usadas no prefixo das mensagens de erro
const (
	OpAnalyzeCampaigns    = "analyzing campaigns"
	OpGenerateInsights    = "generating insights"
	OpGenerateSuggestions = "generating suggestions"
)

// Dependencies é o que os comandos recebem de fora
type Dependencies struct {
	Config *config.Config
	Stdout io.Writer
	Now    func() time.Time

	// CampaignReporter substitui a análise padrão (integrador Meta simulado)
	CampaignReporter reporting.CampaignReporter
}

func (d Dependencies) config() *config.Config {
	if d.Config == nil {
		return config.Default()
	}
	return d.Config
}

func (d Dependencies) stdout() io.Writer {
	if d.Stdout == nil {
		return os.Stdout
	}
	return d.Stdout
}

func (d Dependencies) now() func() time.Time {
	if d.Now == nil {
		return time.Now
	}
	return d.Now
}

func (d Dependencies) campaignReporter() reporting.CampaignReporter {
	if d.CampaignReporter == nil {
		return reporting.NewService(meta.New(d.config())).WithClock(d.now())
	}
	return d.CampaignReporter
}

// CommandFactory monta o comando de uma ferramenta
type CommandFactory func(deps Dependencies) *cobra.Command

// Run carrega a configuração, configura os logs e executa o comando. Retorna o código de saída.
func Run(operation string, factory CommandFactory, args []string, stdout, stderr io.Writer) int {
	log.Configure(stderr, "warn")

	cfg, err := config.NewConfig()
	if err != nil {
		err = cliErrors.WithCode(errors.Wrap(err, "load configuration"), cliErrors.ErrConfiguration)
		return fail(stderr, operation, err)
	}
	log.Configure(stderr, cfg.App.LogLevel)

	cmd := factory(Dependencies{
		Config: cfg,
		Stdout: stdout,
		Now:    time.Now,
	})

	return Execute(operation, cmd, args, stderr)
}

// Execute roda o comando já montado. Qualquer erro vira uma linha em stderr e código 1.
func Execute(operation string, cmd *cobra.Command, args []string, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetErr(stderr)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cliErrors.WithCode(err, cliErrors.ErrInvalidRequest)
	})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		return fail(stderr, operation, err)
	}

	return 0
}

func fail(stderr io.Writer, operation string, err error) int {
	cliErr := cliErrors.WriteError(stderr, operation, err)
	log.L.WithFields(log.Fields{
		"code":  cliErr.Code,
		"error": cliErr.Message,
	}).Debug("comando finalizado com erro")

	return cliErrors.ExitFailure
}

// requireFlags falha com VAL_002 quando alguma das flags não foi informada na linha de comando
func requireFlags(names ...string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		var missing []string
		for _, name := range names {
			if !cmd.Flags().Changed(name) {
				missing = append(missing, fmt.Sprintf("%q", name))
			}
		}

		if len(missing) > 0 {
			return cliErrors.WithCode(
				errors.Errorf("required flag(s) %s not set", strings.Join(missing, ", ")),
				cliErrors.ErrMissingRequiredData,
			)
		}
		return nil
	}
}

func validateOutput(format string) error {
	if !config.IsValidOutputFormat(format) {
		return cliErrors.WithCode(
			errors.Errorf("invalid output format %q (expected text, json or yaml)", format),
			cliErrors.ErrInvalidFormat,
		)
	}
	return nil
}
