package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

type versionCmd struct {
	gs     *globalState
	isJSON bool
}

func (c *versionCmd) run(_ *cobra.Command, _ []string) error {
	if !c.isJSON {
		_, err := fmt.Fprintf(c.gs.stdOut, "mix v%s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return err
	}

	details := map[string]string{
		"version":   version,
		"goVersion": runtime.Version(),
		"goOs":      runtime.GOOS,
		"goArch":    runtime.GOARCH,
	}
	jsonDetails, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to produce JSON version details: %w", err)
	}

	_, err = fmt.Fprintln(c.gs.stdOut, string(jsonDetails))
	return err
}

func getCmdVersion(gs *globalState) *cobra.Command {
	versionCmd := &versionCmd{gs: gs}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "show application version",
		Args:  cobra.NoArgs,
		RunE:  versionCmd.run,
	}

	cmd.Flags().BoolVar(&versionCmd.isJSON, "json", false, "if set, output version information will be in JSON format")

	return cmd
}
