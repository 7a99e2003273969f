package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mix-lang/mix/internal/ast"
	"github.com/mix-lang/mix/internal/build"
	"github.com/mix-lang/mix/internal/diag"
	"github.com/mix-lang/mix/internal/errext"
	"github.com/mix-lang/mix/internal/errext/exitcodes"
	"github.com/mix-lang/mix/internal/lexer"
	"github.com/mix-lang/mix/internal/project"
)

type cmdBuild struct {
	gs *globalState

	dumpAST bool
	tokens  bool
}

func (c *cmdBuild) flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.String("entry", project.DefaultEntry, "entry `file`, relative to the project directory")
	flags.Int64P("jobs", "j", 0, "number of files parsed in parallel, 0 means one per CPU")
	flags.BoolVar(&c.dumpAST, "dump-ast", false, "print the syntax tree of every file")
	flags.BoolVar(&c.tokens, "tokens", false, "print the token stream of every file")
	return flags
}

// flagConfig returns the project settings given on the command line.
func (c *cmdBuild) flagConfig(flags *pflag.FlagSet) project.Config {
	return project.Config{
		Entry: getNullString(flags, "entry"),
		Jobs:  getNullInt64(flags, "jobs"),
	}
}

func (c *cmdBuild) run(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	p, err := project.Open(c.gs.fs, dir, c.gs.envConf, c.flagConfig(cmd.Flags()))
	if err != nil {
		err = errext.WithExitCodeIfNone(err, exitcodes.InvalidProject)
		return errext.WithHint(err, "create a project with `mix create <name>` or pass its directory to `mix build`")
	}

	sources, err := p.Sources()
	if err != nil {
		return errext.WithExitCodeIfNone(err, exitcodes.InvalidProject)
	}

	logger := c.gs.logger.WithField("project", p.Config.Name.String)
	driver := build.New(p.FS(),
		build.WithJobs(int(p.Config.Jobs.Int64)),
		build.WithLogger(logger),
	)

	report, err := driver.Build(c.gs.ctx, sources)
	if err != nil {
		return err
	}

	for _, res := range report.Results {
		if err := c.printArtifacts(c.gs.stdOut, res); err != nil {
			return err
		}
	}

	formatter := diag.NewFormatter(c.gs.stdErr, c.gs.colored(c.gs.stdErr))
	for _, res := range report.Results {
		formatter.AddSource(res.Path, res.Source)
	}
	diags := report.Diagnostics()
	formatter.FormatAll(diags)

	if fatal := report.Fatal(); fatal != nil {
		return errext.WithExitCodeIfNone(fmt.Errorf("build stopped: %w", fatal), exitcodes.FatalSyntaxError)
	}
	if report.HasErrors() {
		err := fmt.Errorf("build failed with %d error(s) in %d file(s)", diags.ErrorCount(), len(sources))
		return errext.WithExitCodeIfNone(err, exitcodes.DiagnosticsReported)
	}

	logger.WithField("build", report.ID.String()).Debugf("built in %s", report.Duration)
	_, err = fmt.Fprintf(c.gs.stdOut, "%s %d file(s) parsed\n",
		c.gs.color(c.gs.stdOut, color.FgGreen, color.Bold).Sprint("compile done:"), len(sources))
	return err
}

// printArtifacts writes the --tokens and --dump-ast output for one file.
func (c *cmdBuild) printArtifacts(w io.Writer, res build.Result) error {
	if res.File == nil {
		return nil
	}

	if c.tokens {
		fmt.Fprintf(w, "== tokens: %s\n", res.Path)
		toks, _, _ := lexer.Tokenize(res.Path, res.Source)
		for _, tok := range toks {
			fmt.Fprintf(w, "%d:%d\t%s\t%q\n", tok.Span.Line, tok.Span.Column, tok.Type, tok.Literal)
		}
	}

	if c.dumpAST {
		fmt.Fprintf(w, "== ast: %s\n", res.Path)
		if err := ast.Dump(w, res.File); err != nil {
			return err
		}
	}
	return nil
}

func getCmdBuild(gs *globalState) *cobra.Command {
	c := &cmdBuild{gs: gs}

	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "build project / program",
		Long: `Parse every source file of the project in dir (the current directory by
default) and report lexical and syntax diagnostics.

The entry file comes from mix.conf, MIX_ENTRY or --entry, in increasing
order of precedence.`,
		Example: `  mix build
  mix build demo --dump-ast
  MIX_JOBS=4 mix build demo`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.run,
	}
	cmd.Flags().AddFlagSet(c.flagSet())

	return cmd
}
