package cmd

import (
	"fmt"
	"io"
	"os"

	xlog "github.com/appscodelabs/navcheck/internal/log"
	"github.com/appscodelabs/navcheck/pkg/sidebar"

	"github.com/google/renameio/v2"
)

// writeFile replaces path atomically; "" or "-" writes to stdout.
func writeFile(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}

	logger := xlog.WithComponent("output")
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("create pending file %s: %w", path, err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("cleanup pending file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	logger.Info().Str("path", path).Int("bytes", len(data)).Msg("written")
	return nil
}

func writeSidebar(stdout io.Writer, path string, t *sidebar.Tree) error {
	data, err := sidebar.Marshal(t)
	if err != nil {
		return err
	}
	return writeFile(stdout, path, data)
}

func readSidebar(path string) (*sidebar.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := sidebar.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
