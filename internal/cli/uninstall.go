// internal/cli/uninstall.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [package...]",
	Short: "Remove one or more packages",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runUninstall,
}

func runUninstall(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	failures := 0
	for _, name := range args {
		fmt.Printf("Removing %s...\n", name)
		if err := app.UninstallPackage(ctx, name); err != nil {
			fmt.Fprintf(os.Stderr, "✗ Failed to remove %s: %s\n", name, userMessage(err, app.LogPath()))
			failures++
			continue
		}
		fmt.Printf("✓ Removed %s\n", name)
	}

	if failures > 0 {
		return fmt.Errorf("%d package(s) failed to uninstall", failures)
	}
	return nil
}
