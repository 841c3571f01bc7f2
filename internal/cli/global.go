package cli

import (
	"fmt"
	"strings"

	"github.com/kubev2v/fitness-tracker/internal/config"
	"github.com/kubev2v/fitness-tracker/pkg/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

var (
	legalLogLevels = []string{"debug", "info", "warn", "error"}
)

type GlobalOptions struct {
	LogLevel string

	config *config.Config
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		LogLevel: "info",
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, fmt.Sprintf("Log level. One of: (%s).", strings.Join(legalLogLevels, ", ")))
}

// Complete loads the environment configuration. Flags set on the command line win.
func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	o.config = cfg

	if !cmd.Flags().Changed("log-level") {
		o.LogLevel = cfg.Service.LogLevel
	}

	zap.ReplaceGlobals(log.InitLog(log.ParseLevel(o.LogLevel)))
	zap.S().Named("cli").Debugf("Configuration: %s", cfg)

	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if !funk.Contains(legalLogLevels, o.LogLevel) {
		return fmt.Errorf("log level must be one of %s", strings.Join(legalLogLevels, ", "))
	}
	return nil
}
