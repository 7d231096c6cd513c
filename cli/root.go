// Package cli holds the frock command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/dmleach/frock/app"
	"github.com/dmleach/frock/config"
	"github.com/dmleach/frock/services"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "frock",
	Short: "Front-controller dispatcher",
	Long: `frock turns a request path into a class name and runs it.

  /?path=user/list  ->  <controller namespace>\user\List -> Execute()

Without a subcommand it starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml or ./config/config.yaml)")
}

// frockOptions translates config into dispatcher options.
func frockOptions(cfg *config.Config) []services.Option {
	return []services.Option{
		services.WithPathKey(cfg.PathKey()),
		services.WithDefaultPath(cfg.Frock.DefaultPath),
		services.WithNamespaces(cfg.Namespaces()),
		services.WithDebug(cfg.Frock.Debug),
	}
}

// buildRegistry registers the app classes under the configured namespaces.
func buildRegistry(cfg *config.Config) (*services.Registry, error) {
	reg := services.NewRegistry()
	if err := app.Register(reg, cfg.Namespaces()); err != nil {
		return nil, fmt.Errorf("register classes: %w", err)
	}
	return reg, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
