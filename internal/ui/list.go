package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/devoxx-schedule/internal/dateutil"
	"github.com/javiermolinar/devoxx-schedule/internal/talk"
)

// roomWidth pads the room column so titles line up.
const roomWidth = 12

func (a *App) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [day]",
		Short: "Print a day's talks",
		Long: `Print the talks of one conference day in start order.

The day is a weekday name, "today" or "tomorrow". Without an argument
today's schedule is printed. Saturday and Sunday show Monday.`,
		Example: `  devoxx-schedule list
  devoxx-schedule list wednesday
  devoxx-schedule list --offline thu`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			day, err := dateutil.ParseDay(input, a.now())
			if err != nil {
				return fmt.Errorf("%w: %q", err, input)
			}

			loader, closeSource, err := a.openLoader()
			if err != nil {
				return err
			}
			defer closeSource()

			talks, err := loader.Load(cmd.Context(), day)
			if err != nil {
				return err
			}

			header := fmt.Sprintf("=== %s ===", dateutil.Label(day))
			if a.offline {
				header += " " + formatWarning("[offline]")
			}
			_, _ = fmt.Fprintln(a.out, formatHeader(header))

			if len(talks) == 0 {
				_, _ = fmt.Fprintln(a.out, "No talks scheduled.")
				return nil
			}

			width := termWidth()
			for _, t := range talks {
				_, _ = fmt.Fprintln(a.out, ansi.Truncate(formatTalkLine(t), width, "…"))
			}
			return nil
		},
	}
}

// formatTalkLine renders "  09:30 - 12:30  Room 8        Title (Speakers)".
func formatTalkLine(t *talk.Talk) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(formatTime(fmt.Sprintf("%-13s", t.TimeRange())))
	b.WriteString("  ")
	b.WriteString(formatMuted(fmt.Sprintf("%-*s", roomWidth, t.Room)))
	b.WriteString("  ")
	b.WriteString(t.DisplayTitle())
	if names := t.SpeakerNames(); names != "" {
		b.WriteString(" ")
		b.WriteString(formatMuted("(" + names + ")"))
	}
	return b.String()
}
