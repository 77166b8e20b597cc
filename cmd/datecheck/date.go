package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/crowmagnumb/parsers/dateparse"
	"github.com/crowmagnumb/parsers/internal/exitcode"
	"github.com/crowmagnumb/parsers/internal/logging"
)

var (
	dateHint         string
	dateBaseYear     int
	dateIgnoreOffset bool
	dateInstant      bool
)

var dateCmd = &cobra.Command{
	Use:   "date [value]...",
	Short: "Parse one or more numeric date strings",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDate,
}

func init() {
	f := dateCmd.Flags()
	f.StringVar(&dateHint, "hint", envOr("DATECHECK_HINT", ""), "Format hint, e.g. year-month-day or day-month-year")
	f.IntVar(&dateBaseYear, "base-year", envOrInt("DATECHECK_BASE_YEAR", 0), "Pivot base year enabling two-digit-year patterns")
	f.BoolVar(&dateIgnoreOffset, "ignore-offset", false, "Project instants at UTC even when the input carries an offset")
	f.BoolVar(&dateInstant, "instant", false, "Also print the projected UTC instant")
	rootCmd.AddCommand(dateCmd)
}

func runDate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(logFormat)
	dateparse.SetLogger(log)

	parser := dateparse.New()
	if dateBaseYear != 0 {
		var err error
		parser, err = dateparse.NewWithBaseYear(dateBaseYear)
		if err != nil {
			log.Error().Err(err).Msg("invalid base year")
			os.Exit(exitcode.UsageError)
		}
	}
	hint := dateparse.HintFromString(dateHint)

	failed := false
	for _, input := range args {
		res := parser.ParseWithHint(input, hint)
		if !res.Successful() {
			failed = true
			fmt.Printf("%s\tFAIL\n", input)
			continue
		}
		line := fmt.Sprintf("%s\t%s\t%s", input, res.Payload, res.Confidence)
		if dateInstant {
			if instant, ok := dateparse.ToTime(&res.Payload, dateIgnoreOffset); ok {
				line += "\t" + instant.UTC().Format(time.RFC3339)
			}
		}
		fmt.Println(line)
	}
	if failed {
		os.Exit(exitcode.ParseFail)
	}
	return nil
}

func envOrInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
