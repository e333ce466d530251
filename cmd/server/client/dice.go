package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	sessionID string
	rollLabel string
	bonus     int
	modifier  int
	poolDice  map[string]int
	logLimit  int
	clearLog  bool
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll a dice pool",
	Long: `Roll a pool of dice. Examples:

  roll --dice d6=2,d8=1 --modifier 3
  roll --dice d20=1 --kind attack --label "Longsword"`,
	RunE: rollPool,
}

var checkCmd = &cobra.Command{
	Use:   "check [kind]",
	Short: "Roll a d20 check (attack, skill, ability, defense)",
	Args:  cobra.ExactArgs(1),
	RunE:  rollCheck,
}

var damageCmd = &cobra.Command{
	Use:   "damage [notation]",
	Short: "Roll damage notation such as \"2d6+3 fire\"",
	Args:  cobra.ExactArgs(1),
	RunE:  rollDamage,
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show or clear a session's roll log",
	RunE:  rollLog,
}

var poolKind string

func init() {
	for _, c := range []*cobra.Command{rollCmd, checkCmd, damageCmd, logCmd} {
		c.Flags().StringVar(&sessionID, "session", "default", "roll log session id")
	}
	for _, c := range []*cobra.Command{rollCmd, checkCmd, damageCmd} {
		c.Flags().StringVar(&rollLabel, "label", "", "label shown in the roll log")
	}

	rollCmd.Flags().StringToIntVar(&poolDice, "dice", nil, "dice counts by die, e.g. d6=2,d20=1")
	rollCmd.Flags().IntVar(&modifier, "modifier", 0, "flat modifier added to the total")
	rollCmd.Flags().StringVar(&poolKind, "kind", string(dice.KindCustom), "roll kind")

	checkCmd.Flags().IntVar(&bonus, "bonus", 0, "bonus added to the d20")
	damageCmd.Flags().IntVar(&bonus, "bonus", 0, "bonus added to the damage")

	logCmd.Flags().IntVar(&logLimit, "limit", 0, "maximum entries to show (0 for all)")
	logCmd.Flags().BoolVar(&clearLog, "clear", false, "clear the log instead of showing it")
}

func rollPool(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.RollPool(ctx, &v1alpha1.RollPoolRequest{
		SessionID: sessionID,
		Dice:      poolDice,
		Modifier:  modifier,
		Kind:      poolKind,
		Label:     rollLabel,
	})
	if err != nil {
		return fmt.Errorf("failed to roll pool: %w", err)
	}
	if resp.Entry == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to roll")
		return nil
	}

	printEntry(cmd.OutOrStdout(), resp.Entry)
	return nil
}

func rollCheck(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.RollCheck(ctx, &v1alpha1.RollCheckRequest{
		SessionID: sessionID,
		Kind:      args[0],
		Label:     rollLabel,
		Bonus:     bonus,
	})
	if err != nil {
		return fmt.Errorf("failed to roll check: %w", err)
	}

	printEntry(cmd.OutOrStdout(), resp.Entry)
	return nil
}

func rollDamage(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.RollDamage(ctx, &v1alpha1.RollDamageRequest{
		SessionID: sessionID,
		Notation:  args[0],
		Label:     rollLabel,
		Bonus:     bonus,
	})
	if err != nil {
		return fmt.Errorf("failed to roll damage: %w", err)
	}

	printEntry(cmd.OutOrStdout(), resp.Entry)
	return nil
}

func rollLog(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	req := &v1alpha1.RollLogRequest{SessionID: sessionID, Limit: logLimit}
	out := cmd.OutOrStdout()

	if clearLog {
		resp, err := client.ClearRollLog(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to clear roll log: %w", err)
		}
		fmt.Fprintf(out, "Cleared %d rolls from %s\n", resp.RollsDeleted, sessionID)
		return nil
	}

	resp, err := client.GetRollLog(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get roll log: %w", err)
	}
	if len(resp.Entries) == 0 {
		fmt.Fprintf(out, "No rolls in %s\n", sessionID)
		return nil
	}
	for i := range resp.Entries {
		printEntry(out, &resp.Entries[i])
	}
	return nil
}

func printEntry(w io.Writer, e *dice.Entry) {
	faces := make([]string, 0, len(e.Dice))
	for _, d := range e.Dice {
		faces = append(faces, fmt.Sprintf("d%d:%d", d.Sides, d.Value))
	}

	label := string(e.Kind)
	if e.Label != "" {
		label += " " + e.Label
	}
	fmt.Fprintf(w, "[%s] %s  %s %+d = %d", e.RolledAt.Format("15:04:05"), label, strings.Join(faces, " "), e.Modifier, e.Total)
	if e.DamageType != "" {
		fmt.Fprintf(w, " %s", e.DamageType)
	}
	if e.Message != "" {
		fmt.Fprintf(w, "  %s", e.Message)
	}
	fmt.Fprintln(w)
}
