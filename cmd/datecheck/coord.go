package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crowmagnumb/parsers/geo"
	"github.com/crowmagnumb/parsers/internal/exitcode"
	"github.com/crowmagnumb/parsers/internal/logging"
)

var coordCmd = &cobra.Command{
	Use:   "coord <latitude> <longitude>",
	Short: "Validate a latitude/longitude pair",
	Args:  cobra.ExactArgs(2),
	RunE:  runCoord,
}

func init() {
	rootCmd.AddCommand(coordCmd)
}

func runCoord(cmd *cobra.Command, args []string) error {
	log := logging.Setup(logFormat)

	res := geo.ParseLatLng(args[0], args[1])
	if !res.Successful() {
		log.Warn().
			Str("latitude", args[0]).
			Str("longitude", args[1]).
			Interface("issues", res.Issues).
			Msg("coordinate rejected")
		os.Exit(exitcode.ParseFail)
	}

	fmt.Printf("%.5f,%.5f\t%s", res.Payload.Lat, res.Payload.Lng, res.Confidence)
	for _, issue := range res.Issues {
		fmt.Printf("\t%s", issue)
	}
	fmt.Println()
	return nil
}
