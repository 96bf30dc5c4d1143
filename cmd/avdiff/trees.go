package main

import (
	"strings"

	"emperror.dev/errors"
	"github.com/spf13/cobra"
)

var treesFlags diffFlags

var treesCmd = &cobra.Command{
	Use:   "trees <old> <new> [-- <path>...]",
	Short: "list the changes between two trees",
	Long: strings.TrimSpace(`
Lists the paths that differ between two trees. Each argument may name a commit or a tree;
"-" stands for the empty tree. Renames are shown as a deletion plus an addition.

Paths after "--" restrict the comparison. They are relative to the repository root and may be
glob patterns unless --explicit is given.
`),
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		revs, paths := splitArgs(args, cmd.ArgsLenAtDash())
		if len(revs) != 2 {
			return errors.New("expected exactly two revisions")
		}
		repo, differ, err := getDiffer()
		if err != nil {
			return err
		}
		oldTree, err := repo.ResolveTree(emptyTreeAlias(revs[0]))
		if err != nil {
			return err
		}
		newTree, err := repo.ResolveTree(emptyTreeAlias(revs[1]))
		if err != nil {
			return err
		}
		changes, err := differ.CompareTrees(oldTree, newTree, treesFlags.compareOptions(cmd, paths))
		if err != nil {
			return err
		}
		treesFlags.print(cmd.OutOrStdout(), changes)
		return nil
	},
}

func init() {
	addDiffFlags(treesCmd.Flags(), &treesFlags)
}
