package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	xlog "github.com/appscodelabs/navcheck/internal/log"
	shell "github.com/codeskyblue/go-sh"
	"github.com/rs/zerolog"
)

func newSession(ctx context.Context, dir string) *shell.Session {
	sh := shell.NewSession()
	sh.ShowCMD = xlog.Base().GetLevel() <= zerolog.DebugLevel
	// stdout may carry command output such as a merged sidebar
	sh.Stdout = os.Stderr
	if dir != "" {
		sh.SetDir(dir)
	}
	if deadline, ok := ctx.Deadline(); ok {
		sh.SetTimeout(time.Until(deadline))
	}
	return sh
}

// Checkout makes dir a working copy of repoURL at branch. An existing
// clone is fetched instead of cloned again.
func Checkout(ctx context.Context, repoURL, branch, dir string) error {
	logger := xlog.WithComponent("content")

	if err := os.MkdirAll(filepath.Dir(dir), 0755); err != nil {
		return err
	}

	if _, err := os.Stat(filepath.Join(dir, ".git")); os.IsNotExist(err) {
		logger.Info().Str("repo", repoURL).Str("dir", dir).Msg("cloning")
		if err := newSession(ctx, "").Command("git", "clone", repoURL, dir).Run(); err != nil {
			return fmt.Errorf("git clone %s: %w", repoURL, err)
		}
	} else {
		logger.Info().Str("repo", repoURL).Str("dir", dir).Msg("fetching")
		if err := newSession(ctx, dir).Command("git", "fetch", "--all", "--tags").Run(); err != nil {
			return fmt.Errorf("git fetch in %s: %w", dir, err)
		}
	}

	if branch == "" {
		return nil
	}
	if err := newSession(ctx, dir).Command("git", "checkout", branch).Run(); err != nil {
		return fmt.Errorf("git checkout %s: %w", branch, err)
	}
	return nil
}
