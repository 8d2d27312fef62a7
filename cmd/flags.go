package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	nmrpath "github.com/spinsolve/nmrpath/pkg"
)

type funcFlag func(cmd *cobra.Command)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n",
			nmrpath.Version, nmrpath.Build)
		os.Exit(0)
	}
}
