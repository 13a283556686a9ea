// internal/cli/update.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var updateAll bool

var updateCmd = &cobra.Command{
	Use:   "update [package...]",
	Short: "Upgrade packages to their latest versions",
	Long: `Upgrade the named packages, or every outdated package with --all.

A combined upgrade is attempted first; if it fails each package is
retried on its own and the failures are reported at the end.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&updateAll, "all", false, "upgrade every package with a pending update")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 0 && !updateAll {
		return fmt.Errorf("name at least one package, or pass --all")
	}

	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	names := args
	if updateAll {
		app.Packages.SkipDetails(true)
		pkgs, err := app.ListPackages(ctx)
		if err != nil {
			return fmt.Errorf("%s", userMessage(err, app.LogPath()))
		}
		names = nil
		for _, pkg := range pkgs {
			if pkg.HasUpdate {
				names = append(names, pkg.Name)
			}
		}
		if len(names) == 0 {
			fmt.Println("Everything is up to date.")
			return nil
		}
		fmt.Printf("Upgrading %d package(s)...\n", len(names))
	}

	result := app.UpdateMany(ctx, names)
	for _, name := range result.Succeeded {
		fmt.Printf("✓ %s\n", name)
	}
	for _, name := range result.Failed {
		fmt.Printf("✗ %s\n", name)
	}

	if len(result.Failed) > 0 {
		return fmt.Errorf("%d of %d package(s) failed to upgrade (details: %s)",
			len(result.Failed), len(names), app.LogPath())
	}
	return nil
}
