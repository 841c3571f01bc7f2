package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kubev2v/fitness-tracker/internal/sensors"
	"github.com/kubev2v/fitness-tracker/internal/service"
	"github.com/kubev2v/fitness-tracker/internal/service/report/types"
	"github.com/kubev2v/fitness-tracker/internal/workout"
	"github.com/kubev2v/fitness-tracker/pkg/metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

var (
	legalOutputTypes = types.SupportedFormats
)

type SummarizeOptions struct {
	GlobalOptions

	File     string
	Sheet    string
	Output   string
	FailFast bool
	Metrics  bool
}

func DefaultSummarizeOptions() *SummarizeOptions {
	return &SummarizeOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Sheet:         "packages",
		Output:        string(types.ReportFormatText),
	}
}

func NewCmdSummarize() *cobra.Command {
	o := DefaultSummarizeOptions()
	cmd := &cobra.Command{
		Use:   "summarize [CODE:v1,v2,...]... [--file PATH]",
		Short: "Summarize sensor packages given as arguments or read from a file.",
		Example: "  ftracker summarize RUN:15000,1,75 WLK:9000,1,75,180\n" +
			"  ftracker summarize --file packages.xlsx --sheet packages -o csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *SummarizeOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.File, "file", "f", o.File, "Read packages from an xlsx, yaml or json file.")
	fs.StringVar(&o.Sheet, "sheet", o.Sheet, "Workbook sheet holding the packages.")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.BoolVar(&o.FailFast, "fail-fast", o.FailFast, "Stop at the first package that cannot be summarized.")
	fs.BoolVar(&o.Metrics, "metrics", o.Metrics, "Write the counters to stderr on exit.")
}

func (o *SummarizeOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("sheet") {
		o.Sheet = o.config.Sensors.SheetName
	}
	if !flags.Changed("output") {
		o.Output = o.config.Service.OutputFormat
	}
	if !flags.Changed("fail-fast") {
		o.FailFast = o.config.Service.FailFast
	}

	return nil
}

func (o *SummarizeOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if len(args) == 0 && o.File == "" {
		return fmt.Errorf("no packages given: pass CODE:v1,v2,... arguments or --file")
	}

	if !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}

	return nil
}

func (o *SummarizeOptions) Run(ctx context.Context, args []string, out, errOut io.Writer) error {
	var pkgs []workout.Package

	if o.File != "" {
		filePkgs, err := sensors.LoadFile(o.File, o.Sheet)
		if err != nil {
			return fmt.Errorf("loading packages: %w", err)
		}
		pkgs = append(pkgs, filePkgs...)
	}

	argPkgs, err := parsePackageArgs(args)
	if err != nil {
		return err
	}
	pkgs = append(pkgs, argPkgs...)

	runErr := summarizePackages(pkgs, types.ReportFormat(o.Output), o.FailFast, out, errOut)

	if o.Metrics {
		if err := metrics.WriteText(errOut); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	return runErr
}

// summarizePackages renders every successful summary to out and reports
// failures to errOut. It returns an error when any package failed.
func summarizePackages(pkgs []workout.Package, format types.ReportFormat, failFast bool, out, errOut io.Writer) error {
	ts := service.NewTrackerService(zap.L())
	rs := service.NewReportService()

	results, batchErr := ts.SummarizeBatch(pkgs, failFast)

	report, err := rs.GenerateReport(service.Summaries(results), format)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	fmt.Fprint(out, report)

	if batchErr != nil {
		return batchErr
	}

	failed := service.Failed(results)
	for _, r := range failed {
		fmt.Fprintf(errOut, "package %d (%s): %v\n", r.Index, r.Package.Code, r.Err)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d packages could not be summarized", len(failed), len(results))
	}

	return nil
}
