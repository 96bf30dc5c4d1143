package main

import (
	"os/exec"
	"strings"

	"emperror.dev/errors"
	"github.com/aviator-co/avdiff/internal/git"
	"github.com/aviator-co/avdiff/internal/treediff"
)

var cachedRepo *git.Repo

func getRepo() (*git.Repo, error) {
	if cachedRepo == nil {
		cmd := exec.Command("git", "rev-parse", "--show-toplevel")
		if rootFlags.Directory != "" {
			cmd.Dir = rootFlags.Directory
		}
		toplevel, err := cmd.Output()
		if err != nil {
			return nil, errors.Wrap(err, "failed to determine repo toplevel (are you running inside a Git repo?)")
		}
		cachedRepo, err = git.OpenRepo(strings.TrimSpace(string(toplevel)))
		if err != nil {
			return nil, errors.Wrap(err, "failed to open git repo")
		}
	}
	return cachedRepo, nil
}

func getDiffer() (*git.Repo, *treediff.Differ, error) {
	repo, err := getRepo()
	if err != nil {
		return nil, nil, err
	}
	return repo, treediff.New(repo), nil
}

// splitArgs separates the positional arguments before "--" from the paths
// after it. A nil path list means no "--" was given.
func splitArgs(args []string, dash int) ([]string, []string) {
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}
