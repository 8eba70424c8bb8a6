package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Delete the existing log file before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	target := ctx.Store.GetConfigPath()

	if c.Force {
		if storage.DetectBackend(target) == storage.BackendPostgres {
			return fmt.Errorf("--force is only supported for file-backed logs")
		}
		if _, err := os.Stat(target); err == nil {
			// Close first to release the SQLite file handle
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing log: %w", err)
			}
			if err := os.Remove(target); err != nil {
				return fmt.Errorf("failed to delete existing log: %w", err)
			}
			fmt.Fprintf(out, "Deleted existing log at: %s\n", target)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing log: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Initialized wellday log at: %s\n", target)
	return nil
}
