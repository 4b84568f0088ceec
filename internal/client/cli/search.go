package cli

import (
	"context"
	"fmt"
	"strings"

	"holocron/internal/client/models"
	"holocron/internal/client/notes"
)

// Search enters an incremental search mode. Every entered line becomes the
// current search term; the query is only sent after the configured quiet
// period, and results for superseded terms are discarded. An empty line
// leaves the mode and keeps the last result set as the current listing.
func (a *App) Search(ctx context.Context) error {
	delay := a.config.SearchDebounce
	if delay <= 0 {
		delay = notes.DefaultDebounce
	}

	searcher := notes.NewSearcher(a.repo, delay,
		func(term string, result []models.Note) {
			a.notes = result
			if len(result) == 0 {
				printlnFn("No notes match", fmt.Sprintf("%q", term))
				return
			}
			for i, n := range result {
				printlnFn(fmt.Sprintf("%3d. %s", i+1, n.DisplayTitle()))
			}
		},
		func(term string, err error) {
			printlnFn("Search failed:", err.Error())
			reportAuthLoss(err)
		},
	)
	defer searcher.Stop()

	printlnFn("Search mode: type to filter, empty line to leave.")

	for {
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		term := strings.TrimSpace(line)
		if term == "" {
			return nil
		}
		searcher.SetTerm(ctx, term)
	}
}
