package contrib

// Record is one (user, repo, commits) observation of the long table.
type Record struct {
	User    string
	Repo    string
	Commits float64
}

// Melt converts the wide table into long form: one record per present cell.
// Records are emitted column by column (every user for the first repository,
// then the second, ...), so the first appearance of each repository follows
// header order. Absent cells produce no record; zero and negative counts are
// kept for [Filter] to drop.
func Melt(t *Table) []Record {
	out := make([]Record, 0, t.UserCount()*t.RepoCount())
	for j, repo := range t.Repos {
		for _, row := range t.Rows {
			c := row.Cells[j]
			if !c.Present {
				continue
			}
			out = append(out, Record{User: row.User, Repo: repo, Commits: c.Value})
		}
	}
	return out
}

// Filter returns the records with a positive commit count, preserving order.
// The input slice is not modified.
func Filter(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Commits > 0 {
			out = append(out, r)
		}
	}
	return out
}

// Reshape melts t and drops records without commits.
func Reshape(t *Table) []Record {
	return Filter(Melt(t))
}

// Users returns the distinct users of records in first-seen order.
func Users(records []Record) []string {
	return distinct(records, func(r Record) string { return r.User })
}

// Repos returns the distinct repositories of records in first-seen order.
func Repos(records []Record) []string {
	return distinct(records, func(r Record) string { return r.Repo })
}

func distinct(records []Record, key func(Record) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		k := key(r)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
