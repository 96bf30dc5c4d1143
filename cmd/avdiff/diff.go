package main

import (
	"fmt"
	"io"

	"github.com/aviator-co/avdiff/internal/config"
	"github.com/aviator-co/avdiff/internal/git"
	"github.com/aviator-co/avdiff/internal/treediff"
	"github.com/aviator-co/avdiff/internal/utils/colors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// diffFlags are shared by every command that prints a list of changes.
type diffFlags struct {
	Explicit      bool
	FailUnmatched bool
	Unmodified    bool
	Ignored       bool
	Raw           bool
}

func addDiffFlags(flags *pflag.FlagSet, f *diffFlags) {
	flags.BoolVar(
		&f.Explicit, "explicit", false,
		"treat paths as literal paths and warn about paths that match nothing",
	)
	flags.BoolVar(
		&f.FailUnmatched, "fail-unmatched", false,
		"fail if a path given with --explicit matches nothing",
	)
	flags.BoolVar(
		&f.Unmodified, "unmodified", false,
		"also list paths that did not change",
	)
	flags.BoolVar(
		&f.Ignored, "ignored", false,
		"also list files excluded by .gitignore",
	)
	flags.BoolVar(
		&f.Raw, "raw", false,
		"show modes and object ids like git diff --raw",
	)
}

func (f *diffFlags) compareOptions(cmd *cobra.Command, paths []string) *treediff.CompareOptions {
	opts := &treediff.CompareOptions{
		Paths:             paths,
		IncludeUnmodified: f.Unmodified,
		IncludeIgnored:    f.Ignored,
	}
	failUnmatched := config.Avdiff.Diff.FailOnUnmatchedPath
	if cmd.Flags().Changed("fail-unmatched") {
		failUnmatched = f.FailUnmatched
	}
	if f.Explicit || f.FailUnmatched {
		stderr := cmd.ErrOrStderr()
		opts.ExplicitPaths = &treediff.ExplicitPathsOptions{
			OnUnmatchedPath: func(path string) {
				_, _ = fmt.Fprint(stderr, colors.Faint("warning: path did not match any file: "), path, "\n")
			},
			ShouldFailOnUnmatchedPath: failUnmatched,
		}
	}
	return opts
}

func (f *diffFlags) print(out io.Writer, changes *treediff.TreeChanges) {
	logrus.WithField("count", changes.Count()).Debug("printing changes")
	for _, ch := range changes.All() {
		if f.Raw {
			_, _ = fmt.Fprintf(out, ":%06o %06o %s %s ",
				uint32(ch.OldMode), uint32(ch.Mode),
				git.ShortSha(ch.OldOid), git.ShortSha(ch.Oid),
			)
		}
		_, _ = fmt.Fprint(out, colorStatus(ch.Status), "\t", ch.Path, "\n")
	}
}

func colorStatus(k treediff.ChangeKind) string {
	s := k.Status()
	switch k {
	case treediff.Added:
		return colors.Added(s)
	case treediff.Deleted:
		return colors.Deleted(s)
	case treediff.Modified:
		return colors.Modified(s)
	case treediff.TypeChanged:
		return colors.TypeChange(s)
	case treediff.Untracked:
		return colors.Untracked(s)
	case treediff.Conflicted:
		return colors.Conflict(s)
	default:
		return colors.Faint(s)
	}
}
