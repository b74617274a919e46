package patch

import (
	"fmt"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"github.com/femnad/pat/internal"
	"github.com/femnad/pat/settings"
)

func gitWorktreeRoot() (string, error) {
	repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("error locating enclosing git worktree: %v", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", err
	}

	return worktree.Filesystem.Root(), nil
}

func resolveTarget(file string, s settings.Settings) (string, error) {
	file = internal.ExpandUser(file)
	if filepath.IsAbs(file) {
		return file, nil
	}

	if s.RootDir != "" {
		return filepath.Join(internal.ExpandUser(s.RootDir), file), nil
	}

	if !s.GitRoot {
		return file, nil
	}

	root, err := gitWorktreeRoot()
	if err != nil {
		return "", err
	}

	return filepath.Join(root, file), nil
}
