package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/otplabs/onetough/internal/pieceset"
)

var rootCmd = &cobra.Command{
	Use:   "onetough",
	Short: "Solver for One Tough Puzzle style edge-matching boards",
	Long: `onetough searches for arrangements of pieces whose tabs and blanks
interlock on every shared edge. Run "onetough solve" for a one-shot
solve on the command line or "onetough serve" to start the HTTP API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
		return pieceset.Init()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
