package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var logFormat string

var rootCmd = &cobra.Command{
	Use:   "datecheck",
	Short: "Validate occurrence-record dates and coordinates",
	Long:  "Parses numerically-formatted date strings and latitude/longitude pairs the way the occurrence ingestion pipeline does, reporting the interpreted value and its confidence.",
}

func init() {
	_ = godotenv.Load()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logFormat, "log-format", envOr("DATECHECK_LOG_FORMAT", "text"), "Log format: text or json")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
