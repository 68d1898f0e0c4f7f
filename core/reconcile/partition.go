package reconcile

import "sort"

// Partition splits the keys of two tables into added (current only),
// removed (previous only) and matched (both). The three sets are disjoint and
// their union is the union of both key sets.
func Partition(previous, current *Table) Partitioning {
	p := Partitioning{
		Added:   []string{},
		Removed: []string{},
		Matched: []string{},
	}

	for key := range previous.rows {
		if _, ok := current.rows[key]; ok {
			p.Matched = append(p.Matched, key)
		} else {
			p.Removed = append(p.Removed, key)
		}
	}

	for key := range current.rows {
		if _, ok := previous.rows[key]; !ok {
			p.Added = append(p.Added, key)
		}
	}

	sort.Strings(p.Added)
	sort.Strings(p.Removed)
	sort.Strings(p.Matched)

	return p
}
