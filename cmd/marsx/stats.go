package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/threenigma/marsx/internal/storage"
)

var flagStatsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play-session statistics",
	Long:  `Shows aggregate statistics and the most recent play sessions.`,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of recent sessions to show")
}

var (
	statsTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	statsHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	statsValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

func runStats(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println(statsTitleStyle.Render("Mars-X play statistics"))
	fmt.Println()

	if stats.Sessions == 0 {
		fmt.Println("No sessions recorded yet. Run 'marsx run' to play.")
		return nil
	}

	fmt.Printf("  %s %s\n", statsHeaderStyle.Render("Sessions:  "), statsValueStyle.Render(fmt.Sprintf("%d", stats.Sessions)))
	fmt.Printf("  %s %s\n", statsHeaderStyle.Render("Play time: "), statsValueStyle.Render(formatDuration(stats.TotalTime)))
	fmt.Printf("  %s %s\n", statsHeaderStyle.Render("Frames:    "), statsValueStyle.Render(fmt.Sprintf("%d", stats.TotalFrames)))
	fmt.Printf("  %s %s\n", statsHeaderStyle.Render("Best FPS:  "), statsValueStyle.Render(fmt.Sprintf("%.1f", stats.BestFPS)))
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  %s %s\n", statsHeaderStyle.Render("Last run:  "), statsValueStyle.Render(stats.LastPlayed.Format("2006-01-02 15:04")))
	}

	sessions, err := store.RecentSessions(flagStatsLimit)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(statsHeaderStyle.Render(fmt.Sprintf("  %-20s  %10s  %8s  %8s  %s", "Started", "Duration", "Frames", "Avg FPS", "End")))
	for _, s := range sessions {
		started := "unknown"
		if !s.StartedAt.IsZero() {
			started = s.StartedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("  %-20s  %10s  %8d  %8.1f  %s\n",
			started, formatDuration(s.Duration), s.Frames, s.AvgFPS, s.EndReason)
	}

	return nil
}

func formatDuration(seconds float64) string {
	total := int(seconds)
	if total < 60 {
		return fmt.Sprintf("%ds", total)
	}
	if total < 3600 {
		return fmt.Sprintf("%dm%02ds", total/60, total%60)
	}
	return fmt.Sprintf("%dh%02dm", total/3600, (total%3600)/60)
}
