package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/matcha/internal/client/api"
)

// Browse prompts for sorting and tag filters and prints the matching
// profile cards. Results repeat from a short-lived cache; transient
// network failures are retried by the browse service before an error
// reaches the user.
func (a *App) Browse(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	sortBy, err := getSimpleText(a.reader, "Sort by (age | location | fameRating, empty for default)", os.Stdout)
	if err != nil {
		return err
	}
	tagLine, err := getSimpleText(a.reader, "Filter tags (comma separated, empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	q := api.BrowseQuery{SortBy: sortBy}
	if tagLine != "" {
		for _, tag := range strings.Split(tagLine, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				q.Tags = append(q.Tags, tag)
			}
		}
	}

	profiles, err := a.browseService.List(ctx, q)
	if err != nil {
		renderError(err)
		return err
	}

	if len(profiles) == 0 {
		printlnFn("No profiles match.")
		return nil
	}
	for _, p := range profiles {
		printlnFn(fmt.Sprintf("%s  %s, %d, %s (fame %d) [%s]",
			p.ID, p.FirstName, p.Age, p.Location, p.FameRating, strings.Join(p.Interests, ", ")))
	}
	return nil
}
