package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/liftoff/internal/cli/formatter"
	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// energyValue is a flag holding an energy level in 1..5.
type energyValue int

var _ pflag.Value = (*energyValue)(nil)

func (e *energyValue) String() string { return strconv.Itoa(int(*e)) }
func (e *energyValue) Type() string   { return "level" }

func (e *energyValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("energy must be a number: %q", s)
	}
	if !domain.ValidEnergyLevel(n) {
		return fmt.Errorf("energy must be between %d and %d, got %d", domain.MinEnergyLevel, domain.MaxEnergyLevel, n)
	}
	*e = energyValue(n)
	return nil
}

func newGenerateCmd(app *App) *cobra.Command {
	energy := energyValue(3)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Preview a standard workout for an energy level (not saved)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := app.Generator.Generate(cmd.Context(), int(energy))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWorkout(w))
			return nil
		},
	}

	cmd.Flags().VarP(&energy, "energy", "e", "Energy level (1-5)")

	return cmd
}

func newCatalogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the exercises workouts are built from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCatalog(app.Catalog.All()))
			return nil
		},
	}
}
