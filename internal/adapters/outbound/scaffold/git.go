package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// InitRepo initializes a git repository in dir and commits the scaffolded
// tree as the first commit.
func InitRepo(dir string) error {
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("staging files: %w", err)
	}

	_, err = wt.Commit("Initial commit: IaC project structure", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "tfconform",
			Email: "tfconform@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	return nil
}

// InstallPreCommitHook writes the validation pre-commit hook. Requires an
// initialized repository.
func InstallPreCommitHook(dir string) error {
	hooksDir := filepath.Join(dir, ".git", "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return fmt.Errorf("creating hooks dir: %w", err)
	}
	return os.WriteFile(filepath.Join(hooksDir, "pre-commit"), []byte(preCommitHook), 0o755)
}
