package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/threenigma/marsx/internal/config"
)

var (
	flagSetupBuild  bool
	flagSetupUpdate bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Build the game binary or update dependencies",
	Long: `Setup entry point for building and maintaining the project.

  --build    Compile the marsx binary using the build section of the config
  --update   Refresh module dependencies

Exits 0 on success and 1 on any build or update failure.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&flagSetupBuild, "build", false, "Build the marsx binary")
	setupCmd.Flags().BoolVar(&flagSetupUpdate, "update", false, "Update module dependencies")
}

func runSetup(cmd *cobra.Command, args []string) error {
	if !flagSetupBuild && !flagSetupUpdate {
		return cmd.Help()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	if flagSetupUpdate {
		logger.Info("updating dependencies")
		if err := runTool("go", "get", "-u", "./..."); err != nil {
			return fmt.Errorf("dependency update failed: %w", err)
		}
		if err := runTool("go", "mod", "tidy"); err != nil {
			return fmt.Errorf("mod tidy failed: %w", err)
		}
		logger.Info("dependencies updated")
	}

	if flagSetupBuild {
		buildArgs := buildCommand(cfg.Build)
		logger.Info("building", "args", buildArgs)
		if err := runTool("go", buildArgs...); err != nil {
			return fmt.Errorf("build failed: %w", err)
		}
		logger.Info("build complete", "output", "./marsx")
	}

	return nil
}

// buildCommand translates the build config section into go build arguments.
func buildCommand(b config.BuildConfig) []string {
	args := []string{"build", "-trimpath"}

	ldflags := fmt.Sprintf("-X main.gameVersion=%d.%d.%d-%s",
		b.Version.Major, b.Version.Minor, b.Version.Patch, b.Version.ReleaseType)
	if !b.Compiler.DebugSymbols {
		ldflags += " -s -w"
	}
	args = append(args, "-ldflags", ldflags)

	if b.Compiler.ParallelJobs > 0 {
		args = append(args, "-p", fmt.Sprintf("%d", b.Compiler.ParallelJobs))
	}

	args = append(args, "-o", "marsx", "./cmd/marsx")
	return args
}

func runTool(name string, args ...string) error {
	c := exec.Command(name, args...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
