package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LBuyana/talentflow-app/internal/domain/recommendation"
)

type recommendOutput struct {
	Status          string `json:"status"`
	Recommendations any    `json:"recommendations"`
}

// newRecommendCmd runs one recommendation against the live database and prints it as JSON.
func newRecommendCmd(c *cli) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Compute recommendations once and print them",
	}
	cmd.PersistentFlags().IntVar(&limit, "limit", recommendation.DefaultLimit, "maximum number of results")

	run := func(fn func(a *app, cmd *cobra.Command, id string) (any, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd.Context(), &c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer a.Close()

			recs, err := fn(a, cmd, args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(recommendOutput{Status: "success", Recommendations: recs}); err != nil {
				return fmt.Errorf("encode output: %w", err)
			}
			return nil
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "seeker <seeker_profile_id>",
			Short: "Jobs for a seeker profile",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(a *app, cmd *cobra.Command, id string) (any, error) {
				return a.recommend.JobsForSeeker(cmd.Context(), id, limit)
			}),
		},
		&cobra.Command{
			Use:   "job <job_id>",
			Short: "Seekers for a job posting",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(a *app, cmd *cobra.Command, id string) (any, error) {
				return a.recommend.SeekersForJob(cmd.Context(), id, limit)
			}),
		},
		&cobra.Command{
			Use:   "user <user_id>",
			Short: "Jobs for the seeker profile owned by a user",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(a *app, cmd *cobra.Command, id string) (any, error) {
				return a.recommend.JobsForUser(cmd.Context(), id, limit)
			}),
		},
	)
	return cmd
}
