package service

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"

	"lcu-scout/internal/constants"
	"lcu-scout/internal/domain"
)

// Rank sorts players by score and hands out tier labels from the top down.
// Players beyond the number of labels, the lowest scorers, get no label and
// are left out. Equal scores keep their encounter order, so the later of
// two tied players ranks higher.
func Rank(players []domain.PlayerScore) []domain.RankedPlayer {
	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b domain.PlayerScore) int {
		return cmp.Compare(a.Score, b.Score)
	})

	labels := constants.TierLabels
	ranked := make([]domain.RankedPlayer, 0, min(len(sorted), len(labels)))
	for i := 0; i < len(sorted) && i < len(labels); i++ {
		ranked = append(ranked, domain.RankedPlayer{
			Label:       labels[len(labels)-1-i],
			PlayerScore: sorted[len(sorted)-1-i],
		})
	}
	return ranked
}

// WriteReport prints every scored player, then the tier table.
func WriteReport(w io.Writer, r *domain.Report) error {
	for _, p := range r.Players {
		if _, err := fmt.Fprintf(w, "summoner %s recent average score %s\n", p.Name, formatScore(p.Score)); err != nil {
			return err
		}
	}

	header := r.Query.String()
	if r.CycleID != "" {
		header += " " + r.CycleID
	}
	if _, err := fmt.Fprintf(w, "\n\n------------ lineup (%s) ------------\n", header); err != nil {
		return err
	}
	if len(r.Ranked) == 0 {
		_, err := fmt.Fprintln(w, "no players ranked")
		return err
	}
	for _, p := range r.Ranked {
		if _, err := fmt.Fprintf(w, "%s %s recent average score %s\n", p.Label, p.Name, formatScore(p.Score)); err != nil {
			return err
		}
	}
	return nil
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
