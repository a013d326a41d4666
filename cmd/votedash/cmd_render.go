package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"votedash/cmd/votedash/ui"
	"votedash/internal/tally"
)

var (
	renderPositive uint
	renderNegative uint
	renderSequence string
	renderWidth    int
)

// renderCmd prints a single static frame of the dashboard
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print one dashboard frame for a given tally",
	Long: `Records the given votes into a fresh tally and prints the dashboard once,
without taking over the terminal.

Examples:
  votedash render --positive 3 --negative 1
  votedash render --sequence +,+,-,positive --width 100`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().UintVar(&renderPositive, "positive", 0, "Positive votes to record")
	renderCmd.Flags().UintVar(&renderNegative, "negative", 0, "Negative votes to record")
	renderCmd.Flags().StringVar(&renderSequence, "sequence", "", "Comma-separated votes to record in order (positive, negative, +, -)")
	renderCmd.Flags().IntVar(&renderWidth, "width", ui.DefaultWidth, "Terminal width to lay out for")
}

func runRender(cmd *cobra.Command, args []string) error {
	kinds, err := parseSequence(renderSequence)
	if err != nil {
		return err
	}

	m, t, unsubscribe := newSession()
	defer unsubscribe()

	for i := uint(0); i < renderPositive; i++ {
		t.RecordVote(tally.Positive)
	}
	for i := uint(0); i < renderNegative; i++ {
		t.RecordVote(tally.Negative)
	}
	for _, k := range kinds {
		t.RecordVote(k)
	}

	m.SetSize(renderWidth, ui.DefaultHeight)
	fmt.Fprintln(cmd.OutOrStdout(), m.View())
	return nil
}

func parseSequence(seq string) ([]tally.Kind, error) {
	if strings.TrimSpace(seq) == "" {
		return nil, nil
	}
	parts := strings.Split(seq, ",")
	kinds := make([]tally.Kind, 0, len(parts))
	for _, p := range parts {
		k, err := tally.ParseKind(p)
		if err != nil {
			return nil, fmt.Errorf("invalid --sequence: %w", err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
