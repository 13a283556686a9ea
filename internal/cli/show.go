// internal/cli/show.go
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [package]",
	Short: "Show detailed information about a package",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	out, err := app.ShowPackage(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("%s", userMessage(err, app.LogPath()))
	}
	fmt.Println(strings.TrimRight(out, "\n"))
	return nil
}
