package store

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nibzard/tareas/internal/task"
)

// SortByTitle returns a copy of tasks ordered by title using Spanish
// collation, ignoring case and accents. Equal titles keep their order.
func SortByTitle(tasks []*task.Task) []*task.Task {
	sorted := make([]*task.Task, len(tasks))
	copy(sorted, tasks)

	c := collate.New(language.Spanish, collate.IgnoreCase, collate.IgnoreDiacritics)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].Title(), sorted[j].Title()) < 0
	})
	return sorted
}
