// internal/cli/root.go
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	piping "github.com/Navot/piping"
	"github.com/Navot/piping/pkg/core"
)

var (
	cfgFile   string
	debug     bool
	workspace string
	config    *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "piping",
	Short: "Python package and environment manager",
	Long: `piping - a front-end for pip and virtual environments

Lists installed and outdated packages, installs, removes and upgrades
them, and discovers the virtual environments of your workspace.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/piping/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&workspace, "workspace", "", "workspace root to scan (default is the current directory)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(envsCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if workspace != "" {
		config.WorkspaceRoots = []string{workspace}
	}
	if debug {
		config.Debug = true
	}
}

// newApp builds the wired application for one command invocation.
func newApp() (*piping.App, error) {
	app, err := piping.New(config)
	if err != nil {
		return nil, fmt.Errorf("initializing: %w", err)
	}
	return app, nil
}

// userMessage turns an operation failure into a short non-technical
// notification. Exit codes and stderr stay in the diagnostic log only.
func userMessage(err error, logPath string) string {
	var notFound *piping.NotFoundError
	if errors.As(err, &notFound) {
		return notFound.Error()
	}
	var spawn *piping.SpawnError
	if errors.As(err, &spawn) {
		return fmt.Sprintf("could not start %s; is it installed? (details: %s)", spawn.Path, logPath)
	}
	var execErr *piping.ExecutionError
	if errors.As(err, &execErr) {
		return fmt.Sprintf("the package manager reported an error (details: %s)", logPath)
	}
	var parseErr *piping.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("could not understand the package manager output (details: %s)", logPath)
	}
	return err.Error()
}
