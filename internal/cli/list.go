// internal/cli/list.go
package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	piping "github.com/Navot/piping"
)

var (
	listOutdatedOnly bool
	listNoDetails    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed packages",
	Long: `List the packages installed in the active environment, merged with
update availability. Packages with a pending update are shown first.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listOutdatedOnly, "outdated", false, "show only packages with a pending update")
	listCmd.Flags().BoolVar(&listNoDetails, "no-details", false, "skip per-package description fetches")
}

func runList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if listNoDetails {
		app.Packages.SkipDetails(true)
	}

	pkgs, err := app.ListPackages(context.Background())
	if err != nil {
		return fmt.Errorf("%s", userMessage(err, app.LogPath()))
	}
	piping.Sort(pkgs)

	if env, ok := app.Envs.Current(); ok {
		fmt.Printf("Environment: %s (%s)\n\n", env.Name, env.Path)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, " \tNAME\tVERSION\tLATEST\tDESCRIPTION")
	shown := 0
	for _, pkg := range pkgs {
		if listOutdatedOnly && !pkg.HasUpdate {
			continue
		}
		marker := " "
		if pkg.HasUpdate {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", marker, pkg.Name, pkg.Version, pkg.Latest, pkg.Description)
		shown++
	}
	w.Flush()

	if shown == 0 {
		fmt.Println("no packages to show")
	} else {
		fmt.Printf("\n%d package(s), * = update available\n", shown)
	}
	return nil
}
