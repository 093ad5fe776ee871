package main

import (
	"encoding/json"
	"fmt"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/domain/matching"
	"skill-swap/internal/repository"
	"skill-swap/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newMatchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches <user-id>",
		Short: "Print the ranked swap partners for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id %q: %w", args[0], err)
			}
			limit, _ := cmd.Flags().GetInt("limit")
			if limit <= 0 {
				return matching.ErrInvalidLimit
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.close()

			uc := usecase.NewMatchingUsecase(repository.NewPostgresUserDirectory(e.db), nil, 0, e.logger)
			items, err := uc.FindMatches(ctx, userID, limit)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.NewMatchResponses(items))
		},
	}
	cmd.Flags().IntP("limit", "n", matching.DefaultLimit, "maximum number of matches")
	return cmd
}
