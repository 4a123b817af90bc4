package cmd

import (
	"fmt"
	"io"
	"strings"

	"cinereview/internal/dto/response"
	"cinereview/internal/page"
	"cinereview/internal/usecase"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Print the most recent reviews",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		service := usecase.NewService(rt.repo, rt.logger)
		p := page.New(service.Review, rt.logger)
		p.Mount(cmd.Context())

		return printCards(cmd.OutOrStdout(), p.Feed.Snapshot().Cards())
	},
}

func printCards(w io.Writer, cards []response.ReviewCard) error {
	if len(cards) == 0 {
		_, err := fmt.Fprintln(w, "No reviews yet. Be the first to share your thoughts!")
		return err
	}

	for i, card := range cards {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		header := fmt.Sprintf("%s  %s", stars(card.Stars), card.MovieTitle)
		byline := "by " + card.ReviewerName
		if card.Date != "" {
			byline += ", " + card.Date
		}
		if _, err := fmt.Fprintf(w, "%s\n  %s\n  %s\n", header, card.ReviewText, byline); err != nil {
			return err
		}
	}
	return nil
}

func stars(units [response.StarCount]bool) string {
	var b strings.Builder
	for _, filled := range units {
		if filled {
			b.WriteString("★")
		} else {
			b.WriteString("☆")
		}
	}
	return b.String()
}
