package main

import (
	"os"

	"github.com/kubev2v/fitness-tracker/internal/cli"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	command := NewFTrackerCommand()
	err := command.Execute()
	_ = zap.L().Sync()
	if err != nil {
		os.Exit(1)
	}
}

func NewFTrackerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ftracker [flags] [options]",
		Short: "ftracker summarizes running, walking and swimming sensor packages.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdDemo())
	cmd.AddCommand(cli.NewCmdSummarize())
	cmd.AddCommand(cli.NewCmdKinds())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
