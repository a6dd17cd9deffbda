package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Usage: "strata version",
		Run: func(args []string) error {
			fmt.Printf("strata version %s (built %s)\n", Version, BuildTime)
			return nil
		},
	})
}
