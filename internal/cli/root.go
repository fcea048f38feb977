package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	port       string
	configPath string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	_ = godotenv.Load() // .env is optional

	envPort := os.Getenv("PORT")
	if envPort == "" {
		envPort = "8080"
	}
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd := &cobra.Command{
		Use:   "trivia-quiz-service",
		Short: "Browser-playable trivia quiz service with fuzzy answer grading",
	}

	cmd.PersistentFlags().StringVar(&port, "port", envPort, "port to listen on")
	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.AddCommand(NewStartCmd(&configPath, &port))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	cmd.AddCommand(NewSeedCmd(&configPath))
	return cmd
}
