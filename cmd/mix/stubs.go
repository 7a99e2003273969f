package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mix-lang/mix/internal/errext"
	"github.com/mix-lang/mix/internal/errext/exitcodes"
)

// underDevelopment is the RunE of commands that only exist as placeholders.
func underDevelopment(gs *globalState) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(gs.stdOut, "under development")
		err := fmt.Errorf("`mix %s` is not implemented yet", cmd.Name())
		return errext.WithHint(errext.WithExitCodeIfNone(err, exitcodes.NotImplemented), docsURL)
	}
}

func getCmdRun(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "run [dir]",
		Short: "run project / program",
		Args:  cobra.MaximumNArgs(1),
		RunE:  underDevelopment(gs),
	}
}

func getCmdInstall(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "install <package>",
		Short: "install dependencies",
		Args:  exactArgsWithMsg(1, "the package to install"),
		RunE:  underDevelopment(gs),
	}
}

func getCmdUpdate(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "update compiler & package",
		Args:  cobra.NoArgs,
		RunE:  underDevelopment(gs),
	}
}

func getCmdClean(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "clean project build",
		Args:  cobra.NoArgs,
		RunE:  underDevelopment(gs),
	}
}
