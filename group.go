package showcase

// UncategorizedLabel is the sentinel group for articles without a category.
// It is a render-time concept only and is never persisted.
const UncategorizedLabel = "Uncategorized"

// CategoryGroup is one rendered section: a category label and its articles
// in the order they arrived (i.e. date descending).
type CategoryGroup struct {
	Category string
	Articles []Article
}

// GroupByCategory partitions a date-sorted article list into category groups.
// The pass is single and stable: groups appear in first-seen order, so the
// category of the newest article leads, and within each group the input
// ordering is preserved. Articles with an empty category land under
// UncategorizedLabel.
func GroupByCategory(articles []Article) []CategoryGroup {
	index := make(map[string]int, len(articles))
	groups := make([]CategoryGroup, 0, len(articles))
	for _, a := range articles {
		category := a.Category
		if category == "" {
			category = UncategorizedLabel
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, CategoryGroup{Category: category})
		}
		groups[i].Articles = append(groups[i].Articles, a)
	}
	return groups
}
