package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/formula"
)

var highestArchetypeAbility int

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the progression rules offline",
}

var rulesTableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the per-level point table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeRulesTable(cmd.OutOrStdout(), highestArchetypeAbility)
	},
}

func init() {
	rulesTableCmd.Flags().IntVar(&highestArchetypeAbility, "archetype-ability", 1,
		"highest archetype ability score used for training points")
	rulesCmd.AddCommand(rulesTableCmd)
}

func writeRulesTable(w io.Writer, archetypeAbility int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "LEVEL\tHEALTH/ENERGY\tABILITY\tSKILL\tTRAINING\tPROFICIENCY\tMAX ABILITY\tMAX DEFENSE"); err != nil {
		return err
	}
	for level := formula.MinLevel; level <= formula.MaxLevel; level++ {
		_, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			level,
			formula.HealthEnergyPoints(level),
			formula.AbilityPoints(level),
			formula.SkillPoints(level),
			formula.TrainingPoints(level, archetypeAbility),
			formula.ProficiencyPoints(level),
			formula.MaxAbility(level),
			formula.MaxDefenseBonus(level),
		)
		if err != nil {
			return err
		}
	}

	return tw.Flush()
}
