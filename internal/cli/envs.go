// internal/cli/envs.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Navot/piping/pkg/core"
)

var envsCmd = &cobra.Command{
	Use:   "envs",
	Short: "Manage virtual environments",
	Long:  `List, create and select the virtual environments of the workspace.`,
	RunE:  runEnvsList,
}

var envsCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new virtual environment",
	Long: `Create a virtual environment under the first workspace root using
the resolved interpreter. The new environment is not selected
automatically; use 'piping envs use' for that.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnvsCreate,
}

var envsUseCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Select the environment package operations target",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnvsUse,
}

func init() {
	envsCmd.AddCommand(envsCreateCmd)
	envsCmd.AddCommand(envsUseCmd)
}

func runEnvsList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	envs := app.ListEnvironments()
	if len(envs) == 0 {
		fmt.Println("No virtual environments found in the workspace.")
		return nil
	}

	for _, env := range envs {
		marker := " "
		if env.Active {
			marker = "*"
		}
		fmt.Printf("  %s %s\t%s\n", marker, env.Name, env.Path)
	}
	fmt.Println("\n* = active environment")
	return nil
}

func runEnvsCreate(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	env, err := app.CreateEnvironment(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("%s", userMessage(err, app.LogPath()))
	}

	fmt.Printf("✓ Created environment %s at %s\n", env.Name, env.Path)
	fmt.Printf("Select it with: piping envs use %s\n", env.Name)
	return nil
}

func runEnvsUse(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	// A fresh scan so the selection can match environments created since
	// the last run.
	app.ListEnvironments()

	env, err := app.SetActive(args[0])
	if err != nil {
		return err
	}

	// Persist the selection so later invocations target the same env.
	config.ActiveEnv = env.Path
	if err := core.SaveConfig(config, cfgFile); err != nil {
		return fmt.Errorf("saving selection: %w", err)
	}

	fmt.Printf("✓ Now using %s (%s)\n", env.Name, env.Path)
	return nil
}
