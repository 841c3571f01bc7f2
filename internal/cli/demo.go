package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kubev2v/fitness-tracker/internal/service/report/types"
	"github.com/kubev2v/fitness-tracker/internal/workout"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
)

// DemoPackages are the sample sensor readings summarized by the demo command.
var DemoPackages = []workout.Package{
	{Code: string(workout.CodeSwimming), Fields: []any{720, 1, 80, 25, 40}},
	{Code: string(workout.CodeRunning), Fields: []any{15000, 1, 75}},
	{Code: string(workout.CodeWalking), Fields: []any{9000, 1, 75, 180}},
}

type DemoOptions struct {
	GlobalOptions

	Output string
}

func DefaultDemoOptions() *DemoOptions {
	return &DemoOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Output:        string(types.ReportFormatText),
	}
}

func NewCmdDemo() *cobra.Command {
	o := DefaultDemoOptions()
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Summarize the built-in sample packages.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *DemoOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *DemoOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}

	if !cmd.Flags().Changed("output") {
		o.Output = o.config.Service.OutputFormat
	}

	return nil
}

func (o *DemoOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}

	return nil
}

func (o *DemoOptions) Run(ctx context.Context, out, errOut io.Writer) error {
	return summarizePackages(DemoPackages, types.ReportFormat(o.Output), false, out, errOut)
}
