package skillgap

// MinActiveCategories is the smallest number of axes a summary may have before
// DefaultCategories are added.
const MinActiveCategories = 3

type CategorySummary struct {
	Category        Category `json:"category"`
	Total           int      `json:"total"`
	Obtained        float64  `json:"obtained"`
	CompletionRatio float64  `json:"completion_ratio"`
}

type categoryTally struct {
	total    int
	obtained float64
}

// Aggregate tallies classified skills per category and returns one entry per
// active axis in category declaration order. Other never becomes an axis.
func Aggregate(matched, partial, missing []ClassifiedSkill) []CategorySummary {
	tally := make(map[Category]*categoryTally)
	add := func(skills []ClassifiedSkill, credit float64) {
		for _, s := range skills {
			if SkillKey(s.Name) == "" {
				continue
			}
			c := Categorize(s.Name)
			t, ok := tally[c]
			if !ok {
				t = &categoryTally{}
				tally[c] = t
			}
			t.total++
			t.obtained += credit
		}
	}
	add(matched, 1)
	add(partial, PartialCredit)
	add(missing, 0)

	active := make([]Category, 0, len(categoryTable))
	for _, c := range Categories() {
		if c == CategoryOther {
			continue
		}
		if t, ok := tally[c]; ok && t.total > 0 {
			active = append(active, c)
		}
	}

	if len(active) < MinActiveCategories {
		for _, d := range DefaultCategories {
			if !containsCategory(active, d) {
				active = append(active, d)
			}
		}
	}

	out := make([]CategorySummary, 0, len(active))
	for _, c := range active {
		s := CategorySummary{Category: c}
		if t, ok := tally[c]; ok && t.total > 0 {
			s.Total = t.total
			s.Obtained = t.obtained
			s.CompletionRatio = t.obtained / float64(t.total)
		}
		out = append(out, s)
	}
	return out
}

func containsCategory(list []Category, c Category) bool {
	for _, it := range list {
		if it == c {
			return true
		}
	}
	return false
}
