// internal/cli/install.go
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install [package[==version]...]",
	Short: "Install one or more packages",
	Long: `Install packages into the active environment.

Examples:
  piping install requests
  piping install requests==2.31.0
  piping install flask pytest black`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	failures := 0
	for _, arg := range args {
		name, version := splitSpec(arg)
		fmt.Printf("Installing %s...\n", arg)
		if err := app.InstallPackage(ctx, name, version); err != nil {
			fmt.Fprintf(os.Stderr, "✗ Failed to install %s: %s\n", arg, userMessage(err, app.LogPath()))
			failures++
			continue
		}
		fmt.Printf("✓ Installed %s\n", arg)
	}

	if failures > 0 {
		return fmt.Errorf("%d package(s) failed to install", failures)
	}
	return nil
}

// splitSpec splits "name==version" into its parts; version may be empty.
func splitSpec(arg string) (name, version string) {
	if i := strings.Index(arg, "=="); i >= 0 {
		return arg[:i], arg[i+2:]
	}
	return arg, ""
}
