package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/budget"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
	"github.com/KirkDiggler/rpg-sheet/internal/export/pdf"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	playerID    string
	charName    string
	speciesName string
	exportPath  string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a level 1 character",
	RunE:  createCharacter,
}

var summaryCmd = &cobra.Command{
	Use:   "summary [character-id]",
	Short: "Show a character's derived values and budgets",
	Args:  cobra.ExactArgs(1),
	RunE:  getSummary,
}

var abilityCmd = &cobra.Command{
	Use:   "ability [character-id] [ability] [up|down]",
	Short: "Raise or lower an ability score",
	Long: `Raise or lower an ability score. Examples:

  ability char_123 strength up
  ability char_123 agility down`,
	Args: cobra.ExactArgs(3),
	RunE: changeAbility,
}

var skillCmd = &cobra.Command{
	Use:   "skill [character-id] [skill] [up|down]",
	Short: "Raise or lower a proficient skill's value",
	Args:  cobra.ExactArgs(3),
	RunE:  changeSkill,
}

var exportCmd = &cobra.Command{
	Use:   "export [character-id]",
	Short: "Export a character sheet as PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  exportSheet,
}

func init() {
	createCmd.Flags().StringVar(&playerID, "player", "", "owning player id")
	createCmd.Flags().StringVar(&charName, "name", "", "character name")
	createCmd.Flags().StringVar(&speciesName, "species", "", "species from the catalog")
	_ = createCmd.MarkFlagRequired("name") // nolint:errcheck // flag is defined above

	exportCmd.Flags().StringVarP(&exportPath, "out", "o", "", "output file (defaults to <character-id>.pdf)")
}

func createCharacter(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.CreateCharacter(ctx, &v1alpha1.CreateCharacterRequest{
		PlayerID: playerID,
		Name:     charName,
		Species:  speciesName,
	})
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", resp.Character.Name, resp.Character.ID)
	return nil
}

func getSummary(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.GetSummary(ctx, &v1alpha1.CharacterRequest{CharacterID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get summary: %w", err)
	}

	printSummary(cmd.OutOrStdout(), resp.Summary)
	return nil
}

func printSummary(w io.Writer, s *engine.Summary) {
	fmt.Fprintf(w, "Character %s, level %d\n", s.CharacterID, s.Level)
	fmt.Fprintf(w, "Archetype: %s (innate threshold %d, pools %d, energy %d, bonus feats %d)\n",
		s.Archetype.Type, s.Archetype.InnateThreshold, s.Archetype.InnatePools,
		s.Archetype.InnateEnergy, s.Archetype.BonusArchetypeFeats)

	fmt.Fprintf(w, "\nAbilities (ceiling %d, negative sum %d):\n", s.AbilityCeiling, s.NegativeSum)
	for _, a := range character.Abilities {
		fmt.Fprintf(w, "  %-13s %3d   %-17s %3d\n", a, s.Abilities[a], a.Defense(), s.Defenses[a.Defense()])
	}

	if s.Budget == nil {
		return
	}
	fmt.Fprintf(w, "\nBudgets:\n")
	for _, c := range budget.Categories {
		p, ok := s.Budget.Pools[c]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-20s %4d / %-4d %s\n", c, p.Spent, p.Total, p.State)
	}
}

func changeAbility(cmd *cobra.Command, args []string) error {
	req := &v1alpha1.AbilityRequest{CharacterID: args[0], Ability: args[1]}

	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var resp *v1alpha1.ChangeResponse
	switch args[2] {
	case "up":
		resp, err = client.IncreaseAbility(ctx, req)
	case "down":
		resp, err = client.DecreaseAbility(ctx, req)
	default:
		return fmt.Errorf("direction must be up or down, got %q", args[2])
	}
	if err != nil {
		return fmt.Errorf("failed to change ability: %w", err)
	}

	out := cmd.OutOrStdout()
	if !resp.Saved {
		reason := "not allowed"
		if resp.Check != nil && resp.Check.Reason != "" {
			reason = resp.Check.Reason
		}
		fmt.Fprintf(out, "Refused: %s\n", reason)
		return nil
	}
	a := character.Ability(args[1])
	fmt.Fprintf(out, "%s is now %d\n", a, resp.Character.Abilities.Value(a))
	if resp.Check != nil && resp.Check.OverBudget {
		fmt.Fprintf(out, "Warning: ability points over budget (%d remaining)\n", resp.Check.Remaining)
	}
	for _, skill := range resp.ResetSkills {
		fmt.Fprintf(out, "Reset sub-skill %s\n", skill)
	}
	for _, m := range resp.DroppedMilestones {
		fmt.Fprintf(out, "Dropped milestone choice at level %d\n", m)
	}
	return nil
}

func changeSkill(cmd *cobra.Command, args []string) error {
	req := &v1alpha1.SkillRequest{CharacterID: args[0], Skill: args[1]}

	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var resp *v1alpha1.ChangeResponse
	switch args[2] {
	case "up":
		resp, err = client.IncreaseSkill(ctx, req)
	case "down":
		resp, err = client.DecreaseSkill(ctx, req)
	default:
		return fmt.Errorf("direction must be up or down, got %q", args[2])
	}
	if err != nil {
		return fmt.Errorf("failed to change skill: %w", err)
	}

	out := cmd.OutOrStdout()
	if !resp.Saved {
		reason := "not allowed"
		if resp.Check != nil && resp.Check.Reason != "" {
			reason = resp.Check.Reason
		}
		fmt.Fprintf(out, "Refused: %s\n", reason)
		return nil
	}
	if i := resp.Character.SkillIndex(args[1]); i >= 0 {
		fmt.Fprintf(out, "%s is now %d\n", args[1], resp.Character.Skills[i].Value)
	}
	return nil
}

func exportSheet(cmd *cobra.Command, args []string) error {
	characterID := args[0]

	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	charResp, err := client.GetCharacter(ctx, &v1alpha1.CharacterRequest{CharacterID: characterID})
	if err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}
	summaryResp, err := client.GetSummary(ctx, &v1alpha1.CharacterRequest{CharacterID: characterID})
	if err != nil {
		return fmt.Errorf("failed to get summary: %w", err)
	}

	data, err := pdf.RenderSheet(charResp.Character, summaryResp.Summary)
	if err != nil {
		return err
	}

	path := exportPath
	if path == "" {
		path = characterID + ".pdf"
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", path, len(data))
	return nil
}
