package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kubev2v/fitness-tracker/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalStructuredTypes = []string{jsonFormat, yamlFormat}
)

type kindView struct {
	Code   string   `json:"code"`
	Label  string   `json:"label"`
	Fields []string `json:"fields"`
}

type KindsOptions struct {
	GlobalOptions

	Output string
}

func DefaultKindsOptions() *KindsOptions {
	return &KindsOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdKinds() *cobra.Command {
	o := DefaultKindsOptions()
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the supported workout kinds and their fields.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *KindsOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalStructuredTypes, ", ")))
}

func (o *KindsOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if len(o.Output) > 0 && !funk.Contains(legalStructuredTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalStructuredTypes, ", "))
	}

	return nil
}

func (o *KindsOptions) Run(ctx context.Context, out io.Writer) error {
	ts := service.NewTrackerService(zap.L())

	views := make([]kindView, 0)
	for _, k := range ts.Kinds() {
		views = append(views, kindView{Code: string(k.Code()), Label: k.Label(), Fields: k.Keys()})
	}

	switch o.Output {
	case jsonFormat:
		marshalled, err := json.Marshal(views)
		if err != nil {
			return fmt.Errorf("marshalling kinds: %w", err)
		}
		fmt.Fprintf(out, "%s\n", string(marshalled))
		return nil
	case yamlFormat:
		marshalled, err := yaml.Marshal(views)
		if err != nil {
			return fmt.Errorf("marshalling kinds: %w", err)
		}
		fmt.Fprint(out, string(marshalled))
		return nil
	default:
		return printKindsTable(out, views)
	}
}

func printKindsTable(out io.Writer, views []kindView) error {
	w := tabwriter.NewWriter(out, 0, 8, 1, '\t', 0)
	fmt.Fprintln(w, "CODE\tLABEL\tFIELDS")
	for _, v := range views {
		fmt.Fprintf(w, "%s\t%s\t%s\n", v.Code, v.Label, strings.Join(v.Fields, ","))
	}
	return w.Flush()
}
