package main

import (
	"fmt"
	"strings"

	"github.com/aviator-co/avdiff/internal/treediff"
	"github.com/aviator-co/avdiff/internal/utils/colors"
	"github.com/aviator-co/avdiff/internal/utils/errutils"
	"github.com/charmbracelet/glamour"
)

const unmatchedPathsHelp = `# ERROR: Unmatched paths

` + "`avdiff`" + ` was asked to compare these paths, but none of them matched a file on either side:

%s
Paths are relative to the repository root. Drop ` + "`--fail-unmatched`" + ` to only warn about them.
`

func renderError(err error) string {
	if unmatched, ok := errutils.As[*treediff.UnmatchedPathError](err); ok {
		var list strings.Builder
		for _, p := range unmatched.Paths {
			fmt.Fprintf(&list, "- `%s`\n", p)
		}
		md := fmt.Sprintf(unmatchedPathsHelp, list.String())
		if out, rerr := glamour.Render(md, colors.MarkdownStyle()); rerr == nil {
			return out
		}
	}
	return fmt.Sprintf("error: %s\n", colors.Failure(err.Error()))
}
