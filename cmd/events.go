package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zjrosen/audioreg/internal/audio/sim"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the events served by the bank",
	Long:  `Display every event path in the configured bank manifest (or the built-in default bank) with its authored properties.`,
	RunE:  runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, _ []string) error {
	bank, err := sim.LoadBankFile(cfg.Bank.Path)
	if err != nil {
		return fmt.Errorf("loading bank: %w", err)
	}
	printEvents(cmd.OutOrStdout(), bank)
	return nil
}

func printEvents(out io.Writer, bank *sim.Bank) {
	fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("Events in bank %q:", bank.Name)))
	if len(bank.Events) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("  (none)"))
		return
	}

	events := sim.NewEngine(bank).Events()
	maxLen := maxPathLen(events)
	for _, ev := range events {
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, ev.Path, describeEvent(ev))
	}
}

func describeEvent(ev sim.EventInfo) string {
	parts := []string{"2d"}
	if ev.Is3D {
		parts[0] = "3d"
	}
	if ev.Length == 0 {
		parts = append(parts, "looping")
	} else {
		parts = append(parts, "length "+ev.Length.String())
	}
	if ev.Fadeout > 0 {
		parts = append(parts, "fadeout "+ev.Fadeout.Round(time.Millisecond).String())
	}
	return strings.Join(parts, ", ")
}

// maxPathLen returns the length of the longest event path in the slice.
func maxPathLen(events []sim.EventInfo) int {
	maxLen := 0
	for _, ev := range events {
		if len(ev.Path) > maxLen {
			maxLen = len(ev.Path)
		}
	}
	return maxLen
}
