package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mix-lang/mix/internal/errext"
	"github.com/mix-lang/mix/internal/errext/exitcodes"
	"github.com/mix-lang/mix/internal/project"
)

const docsURL = "https://mix.org/docs/index.html"

// rootCommand is the "mix" command without a subcommand.
type rootCommand struct {
	gs  *globalState
	cmd *cobra.Command
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{gs: gs}

	c.cmd = &cobra.Command{
		Use:               "mix",
		Short:             "build tool for the Mix programming language",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: c.persistentPreRunE,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	c.cmd.SetOut(gs.stdOut)
	c.cmd.SetErr(gs.stdErr)
	c.cmd.SetVersionTemplate("mix v{{.Version}}\n")
	c.cmd.PersistentFlags().AddFlagSet(c.rootCmdPersistentFlagSet())

	defaultHelp := c.cmd.HelpFunc()
	c.cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != c.cmd {
			defaultHelp(cmd, args)
			return
		}
		c.printHelp()
	})

	c.cmd.AddCommand(
		getCmdBuild(gs),
		getCmdCreate(gs),
		getCmdRun(gs),
		getCmdInstall(gs),
		getCmdUpdate(gs),
		getCmdClean(gs),
		getCmdVersion(gs),
	)

	return c
}

func (c *rootCommand) rootCmdPersistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.BoolVarP(&c.gs.flags.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&c.gs.flags.noColor, "no-color", false, "disable colored output")
	return flags
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	envConf, err := project.ReadEnvConfig(c.gs.env)
	if err != nil {
		return errext.WithExitCodeIfNone(err, exitcodes.InvalidProject)
	}
	c.gs.envConf = envConf

	if !cmd.Flags().Changed("no-color") && envConf.NoColor.Valid {
		c.gs.flags.noColor = envConf.NoColor.Bool
	}
	// https://no-color.org/: any value, even empty, disables colours.
	if _, ok := c.gs.env["NO_COLOR"]; ok {
		c.gs.flags.noColor = true
	}
	if c.gs.flags.noColor {
		c.gs.stdOut.Writer = colorable.NewNonColorable(c.gs.stdOut.Writer)
		c.gs.stdErr.Writer = colorable.NewNonColorable(c.gs.stdErr.Writer)
	}

	level := logrus.InfoLevel
	if envConf.LogLevel.Valid {
		if level, err = logrus.ParseLevel(envConf.LogLevel.String); err != nil {
			return errext.WithExitCodeIfNone(fmt.Errorf("MIX_LOG_LEVEL: %w", err), exitcodes.InvalidProject)
		}
	}
	if c.gs.flags.verbose {
		level = logrus.DebugLevel
	}
	c.gs.logger.SetLevel(level)

	c.gs.logger.Debugf("mix version: v%s", version)
	return nil
}

// execute runs the command line and exits the process on failure. Errors
// carry their exit code and hint through errext; anything else exits with
// exitcodes.InvalidProject, which also covers bad command lines.
func (c *rootCommand) execute() {
	err := c.cmd.ExecuteContext(c.gs.ctx)
	if err == nil {
		return
	}

	code, hint := errext.Split(err, exitcodes.InvalidProject)
	fields := logrus.Fields{}
	if hint != "" {
		fields["hint"] = hint
	}
	c.gs.logger.WithFields(fields).Error(err)
	c.gs.osExit(int(code))
}

// printHelp renders the command overview.
func (c *rootCommand) printHelp() {
	w := c.gs.stdOut
	frame := c.gs.color(w, color.FgBlue)
	title := c.gs.color(w, color.FgGreen)
	desc := c.gs.color(w, color.FgYellow)

	const inner = 42
	box := func(text string) {
		pad := inner - len(text)
		left := pad / 2
		fmt.Fprintln(w, frame.Sprint("┌"+strings.Repeat("─", inner)+"┐"))
		fmt.Fprintln(w, frame.Sprint("│")+
			title.Sprint(strings.Repeat(" ", left)+text+strings.Repeat(" ", pad-left))+
			frame.Sprint("│"))
		fmt.Fprintln(w, frame.Sprint("└"+strings.Repeat("─", inner)+"┘"))
	}

	box("MIX COMMAND HELPER")
	for _, sub := range c.cmd.Commands() {
		if !sub.IsAvailableCommand() && sub.Name() != "help" {
			continue
		}
		fmt.Fprintf(w, "%s %s%s\n", frame.Sprint(" ◈"), title.Sprintf("%-11s", sub.Name()), desc.Sprint(": "+sub.Short))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, c.cmd.PersistentFlags().FlagUsages())
	fmt.Fprintln(w)
	box("READ ALL DOCUMENTATION ON WEB")
	fmt.Fprintf(w, "  %s\n", title.Sprint(docsURL))
}
