package main

import (
	"strings"

	"emperror.dev/errors"
	"github.com/aviator-co/avdiff/internal/config"
	"github.com/spf13/cobra"
)

var workdirFlags struct {
	diffFlags
	Untracked bool
}

var workdirCmd = &cobra.Command{
	Use:   "workdir [-- <path>...]",
	Short: "list the unstaged changes",
	Long: strings.TrimSpace(`
Lists the paths that differ between the index and the working directory, i.e. the changes
that have not been staged yet.
`),
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rest, paths := splitArgs(args, cmd.ArgsLenAtDash())
		if len(rest) > 0 {
			return errors.Errorf("unexpected arguments %q (paths go after \"--\")", rest)
		}
		_, differ, err := getDiffer()
		if err != nil {
			return err
		}
		opts := workdirFlags.compareOptions(cmd, paths)
		opts.IncludeUntracked = config.Avdiff.Diff.IncludeUntracked
		if cmd.Flags().Changed("untracked") {
			opts.IncludeUntracked = workdirFlags.Untracked
		}
		changes, err := differ.CompareWorkdir(opts)
		if err != nil {
			return err
		}
		workdirFlags.print(cmd.OutOrStdout(), changes)
		return nil
	},
}

func init() {
	addDiffFlags(workdirCmd.Flags(), &workdirFlags.diffFlags)
	workdirCmd.Flags().BoolVar(
		&workdirFlags.Untracked, "untracked", false,
		"also list untracked files",
	)
}
