package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aviator-co/avdiff/internal/utils/colors"
	"github.com/dustin/go-humanize"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/cobra"
)

var blobsCmd = &cobra.Command{
	Use:   "blobs <rev>:<path> <rev>:<path>",
	Short: "show the changes between two file versions",
	Long: strings.TrimSpace(`
Shows a unified diff between two blobs, each named as <rev>:<path> (for example HEAD~1:README.md).
Use "-" for an empty file.
`),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, differ, err := getDiffer()
		if err != nil {
			return err
		}
		var blobs [2]*object.Blob
		for i, name := range args {
			if name == "-" {
				continue
			}
			blobs[i], err = repo.Blob(name)
			if err != nil {
				return err
			}
		}
		cc, err := differ.CompareBlobs(blobs[0], blobs[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printPatch(out, cc.Patch)
		_, _ = fmt.Fprint(out, colors.Faint(fmt.Sprintf(
			"%s -> %s", blobSize(blobs[0]), blobSize(blobs[1]),
		)))
		if !cc.IsBinaryComparison {
			_, _ = fmt.Fprint(out, ", ",
				colors.Added(fmt.Sprintf("%d insertions(+)", cc.LinesAdded)), ", ",
				colors.Deleted(fmt.Sprintf("%d deletions(-)", cc.LinesDeleted)),
			)
		}
		_, _ = fmt.Fprint(out, "\n")
		return nil
	},
}

func blobSize(b *object.Blob) string {
	if b == nil {
		return humanize.Bytes(0)
	}
	return humanize.Bytes(uint64(b.Size))
}

func printPatch(out io.Writer, patch string) {
	for _, line := range strings.SplitAfter(patch, "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(line, "diff "),
			strings.HasPrefix(line, "index "),
			strings.HasPrefix(line, "+++"),
			strings.HasPrefix(line, "---"):
			_, _ = fmt.Fprint(out, colors.Bold(body), "\n")
		case strings.HasPrefix(line, "+"):
			_, _ = fmt.Fprint(out, colors.Added(body), "\n")
		case strings.HasPrefix(line, "-"):
			_, _ = fmt.Fprint(out, colors.Deleted(body), "\n")
		case strings.HasPrefix(line, "@@"):
			_, _ = fmt.Fprint(out, colors.TypeChange(body), "\n")
		default:
			_, _ = fmt.Fprint(out, body, "\n")
		}
	}
}
