package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/threenigma/marsx/internal/config"
)

var flagConfigWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the effective configuration after merging the embedded
defaults, the local marsx.yaml, and the user config file.

With --write, the effective configuration is saved to the user config
file so it can be edited in place.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Write the effective config to the user file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	fmt.Print(string(data))

	if flagConfigWrite {
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("\n# written to %s\n", config.UserPath())
	}
	return nil
}
