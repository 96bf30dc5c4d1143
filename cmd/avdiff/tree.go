package main

import (
	"strings"

	"emperror.dev/errors"
	"github.com/aviator-co/avdiff/internal/git"
	"github.com/aviator-co/avdiff/internal/treediff"
	"github.com/spf13/cobra"
)

var treeFlags struct {
	diffFlags
	Index   bool
	Workdir bool
}

var treeCmd = &cobra.Command{
	Use:   "tree [<rev>] [-- <path>...]",
	Short: "list the changes between a tree and the index or working directory",
	Long: strings.TrimSpace(`
Lists the paths that differ between a tree (HEAD by default) and the index, the working
directory, or both.

With --index only staged changes are shown. With --workdir the files on disk are compared with
the tree directly. With both (the default) the working directory is compared with the tree as
seen through the index, like "git diff <rev>". Untracked files are always listed when the working
directory is compared.
`),
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		revs, paths := splitArgs(args, cmd.ArgsLenAtDash())
		rev := "HEAD"
		switch len(revs) {
		case 0:
		case 1:
			rev = emptyTreeAlias(revs[0])
		default:
			return errors.Errorf("unexpected arguments %q (paths go after \"--\")", revs[1:])
		}

		var targets treediff.DiffTargets
		if treeFlags.Index {
			targets |= treediff.Index
		}
		if treeFlags.Workdir {
			targets |= treediff.WorkingDirectory
		}
		if targets == 0 {
			targets = treediff.Index | treediff.WorkingDirectory
		}

		repo, differ, err := getDiffer()
		if err != nil {
			return err
		}
		oldTree, err := repo.ResolveTree(rev)
		if err != nil {
			return err
		}
		changes, err := differ.CompareTreeWith(oldTree, targets, treeFlags.compareOptions(cmd, paths))
		if err != nil {
			return err
		}
		treeFlags.print(cmd.OutOrStdout(), changes)
		return nil
	},
}

// emptyTreeAlias maps "-" to the empty tree.
func emptyTreeAlias(rev string) string {
	if rev == "-" {
		return git.EmptyTree
	}
	return rev
}

func init() {
	addDiffFlags(treeCmd.Flags(), &treeFlags.diffFlags)
	treeCmd.Flags().BoolVar(
		&treeFlags.Index, "index", false,
		"compare with the index",
	)
	treeCmd.Flags().BoolVar(
		&treeFlags.Workdir, "workdir", false,
		"compare with the working directory",
	)
}
