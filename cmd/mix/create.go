package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mix-lang/mix/internal/errext"
	"github.com/mix-lang/mix/internal/errext/exitcodes"
	"github.com/mix-lang/mix/internal/project"
)

func getCmdCreate(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "create new project",
		Long: `Create a new project directory containing a mix.conf file and a
src/main.mx entry file that prints a greeting.`,
		Args: exactArgsWithMsg(1, "the project name"),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := project.Create(gs.fs, args[0])
			if err != nil {
				err = fmt.Errorf("failed to create new project: %w", err)
				return errext.WithExitCodeIfNone(err, exitcodes.InvalidProject)
			}

			gs.logger.WithField("dir", p.Dir).Debug("project created")
			fmt.Fprintf(gs.stdOut, "%s project %s in %s\n",
				gs.color(gs.stdOut, color.FgGreen).Sprint("created"), p.Config.Name.String, p.Dir)
			return nil
		},
	}
}
