package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/spf13/cobra"
)

func DevCmd() *cobra.Command {
	var sql bool
	var port string

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Run the API server with hot reload (air)",
		Long: `Run the API server under air. By default the seeded in-memory store is used,
so every reload starts from the demo catalog. Pass --sql to use the SQLite
database from DB_CONNECTION instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(sql, port)
		},
	}

	cmd.Flags().BoolVar(&sql, "sql", false, "use the SQL store instead of the in-memory one")
	cmd.Flags().StringVar(&port, "port", "8090", "port to listen on")
	return cmd
}

func runDev(sql bool, port string) error {
	airPath, err := exec.LookPath("air")
	if err != nil {
		fmt.Println("Missing binary: air")
		fmt.Println("Install with:")
		fmt.Println("  go install github.com/air-verse/air@latest")
		return fmt.Errorf("air not found")
	}

	if sql {
		err = os.MkdirAll("data", 0o755)
		if err != nil {
			return fmt.Errorf("failed to create data dir: %w", err)
		}
	}

	airArgs := []string{
		"air",
		"-c", "/dev/null",
		"-root", ".",
		"-build.cmd", "go build -o ./tmp/server ./cmd/server",
		"-build.bin", "./tmp/server",
		"-build.delay", "100",
		"-build.exclude_dir", "bin,tmp,data,_examples",
		"-build.exclude_regex", "_test.go$",
		"-build.include_ext", "go,sql,md",
		"-build.kill_delay", "500ms",
		"-build.send_interrupt", "true",
	}

	return syscall.Exec(airPath, airArgs, devEnv(sql, port))
}

// devEnv fills in development defaults for keys missing from the process
// environment. These take precedence over .env, since godotenv never
// overrides variables that are already set.
func devEnv(sql bool, port string) []string {
	defaults := map[string]string{
		"APP_ENV":       "development",
		"PORT":          port,
		"JWT_SECRET":    "dev-secret-change-me",
		"SEED_ON_START": "true",
	}
	if sql {
		defaults["STORAGE_DRIVER"] = "sql"
		defaults["DB_DRIVER"] = "sqlite"
	}

	env := os.Environ()
	for key, value := range defaults {
		if _, ok := os.LookupEnv(key); !ok {
			env = append(env, key+"="+value)
		}
	}
	return env
}
