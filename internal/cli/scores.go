package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top scores for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result LeaderboardResult

			path := "/api/v1/leaderboard?period=" + url.QueryEscape(period)
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "weekly", "Period: weekly, monthly, alltime")

	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your score history and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Token == "" {
				return fmt.Errorf("not signed in, run 'scoreboard login' first")
			}

			var result StatsResult
			if err := client.Get(cmd.Context(), "/api/v1/stats/me", &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}
