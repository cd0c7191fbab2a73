package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func BuildCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the API server binary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildServer(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "bin/server", "output path")
	return cmd
}

func buildServer(output string) error {
	fmt.Println("==> Building", output)

	env := append(os.Environ(), "CGO_ENABLED=0")
	err := runEnv(env, "go", "build", "-trimpath", "-ldflags", "-s -w", "-o", output, "./cmd/server")
	if err != nil {
		return fmt.Errorf("go build failed: %w", err)
	}

	fmt.Println("==> Done")
	return nil
}

func runEnv(env []string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Env = env
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
