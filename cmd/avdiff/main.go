package main

import (
	"fmt"
	"os"

	"emperror.dev/errors"
	"github.com/aviator-co/avdiff/internal/config"
	"github.com/aviator-co/avdiff/internal/utils/colors"
	"github.com/kr/text"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	Debug     bool
	Directory string
}

var RootCmd = &cobra.Command{
	Use:   "avdiff",
	Short: "compare trees, the index and the working directory",

	// Don't automatically print errors or usage information (we handle that ourselves).
	// Cobra still prints usage if you return cmd.Usage() from RunE.
	SilenceErrors: true,
	SilenceUsage:  true,

	// Don't show "completion" command in help menu
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},

	// Run setup before invoking any child commands.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if rootFlags.Debug {
			logrus.SetLevel(logrus.DebugLevel)
			logrus.WithField("avdiff_version", config.Version).Debug("enabled debug logging")
		}

		var configDirs []string
		repo, err := getRepo()
		// Commands like "version" work outside of a repository, so this only
		// means there's no repo-local config to read.
		if err != nil {
			logrus.WithError(err).Debug("unable to load Git repo (probably not inside a repo)")
		} else {
			configDirs = append(configDirs, repo.GitDir())
			logrus.WithField("git_dir", repo.GitDir()).Debug("loaded Git repo")
		}

		// Note: this only returns an error if config exists and it can't be
		// read/parsed. It doesn't return an error if no config file exists.
		didLoadConfig, err := config.Load(configDirs)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		if didLoadConfig {
			logrus.Debug("loaded configuration")
		} else {
			logrus.Debug("no configuration found")
		}
		colors.SetMode(config.Avdiff.Diff.Color)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(
		&rootFlags.Debug, "debug", false,
		"enable verbose debug logging",
	)
	RootCmd.PersistentFlags().StringVarP(
		&rootFlags.Directory, "repo", "C", "",
		"directory to use for git repository",
	)
	RootCmd.AddCommand(
		treesCmd,
		treeCmd,
		workdirCmd,
		blobsCmd,
		versionCmd,
	)
}

func main() {
	colors.SetupBackgroundColorTypeFromEnv()
	if err := RootCmd.Execute(); err != nil {
		// In debug mode, show more detailed information about the error
		// (including the stack trace).
		if rootFlags.Debug {
			stackTrace := fmt.Sprintf("%+v", err)
			_, _ = fmt.Fprintf(os.Stderr, "error: %s\n%s\n", err, text.Indent(stackTrace, "\t"))
		} else {
			_, _ = fmt.Fprint(os.Stderr, renderError(err))
		}
		os.Exit(1)
	}
}
