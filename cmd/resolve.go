package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/spinsolve/nmrpath/internal/iomethod"
	"github.com/spinsolve/nmrpath/internal/ioresolve"
	"github.com/spinsolve/nmrpath/pkg/config"
	"github.com/spinsolve/nmrpath/pkg/spin"
)

// getResolveCmd returns the resolve command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getResolveCmd() *cobra.Command {
	var (
		output   string
		jobs     int
		isotopes string
	)

	resolveCmd := &cobra.Command{
		Use:   "resolve METHOD_FILE SYSTEMS_FILE",
		Short: "Resolve transition pathways",
		Long: `Resolve the transition pathways of a method against an ensemble
of spin systems.

The method file describes channels, spectral dimensions, and events;
the systems file lists spin systems under a spin_systems key. Every
system is resolved concurrently and the weighted pathways are written
as JSON, in ensemble order.

Examples:
  nmrpath resolve hahn_echo.yaml systems.yaml
  nmrpath resolve cosy.yaml systems.yaml -o pathways.json
  nmrpath resolve mas.yaml systems.yaml -j 8 --isotopes custom.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args[0], args[1], output, jobs, isotopes)
		},
	}

	resolveCmd.Flags().StringVarP(&output, "output", "o", "",
		"write pathways JSON to a file instead of STDOUT")
	resolveCmd.Flags().IntVarP(&jobs, "jobs", "j", 0,
		"number of concurrent workers")
	resolveCmd.Flags().StringVar(&isotopes, "isotopes", "",
		"custom isotope file (.json or .sqlite) loaded before parsing")

	return resolveCmd
}

func runResolve(
	methodPath, systemsPath, output string,
	jobs int,
	isotopes string,
) error {
	ctx := context.Background()

	if jobs > 0 {
		cfg.Update([]config.Option{config.OptJobsNumber(jobs)})
	}

	reg := spin.NewRegistry()
	if isotopes != "" {
		if _, err := importIsotopes(reg, isotopes); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	m, err := iomethod.LoadMethod(reg, methodPath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	systems, err := iomethod.LoadSystems(reg, systemsPath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	results, err := ioresolve.Resolve(ctx, cfg, systems, m)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = ioresolve.WriteJSON(output, results); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
