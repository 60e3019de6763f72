package counter

import "sort"

// Aggregate folds per-file stats into per-extension summaries and a grand
// total. Groups are returned in alphabetical extension order so output is
// deterministic.
func Aggregate(stats []FileStat) (groups []Summary, total Summary) {
	byExt := make(map[string]*Summary)

	for _, s := range stats {
		g, ok := byExt[s.Extension]
		if !ok {
			g = &Summary{Extension: s.Extension}
			byExt[s.Extension] = g
		}
		g.Files++
		g.Total += s.Total
		g.Code += s.Code
		g.Comment += s.Comment
		g.Blank += s.Blank

		total.Files++
		total.Total += s.Total
		total.Code += s.Code
		total.Comment += s.Comment
		total.Blank += s.Blank
	}

	groups = make([]Summary, 0, len(byExt))
	for _, g := range byExt {
		fillRatios(g)
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Extension < groups[j].Extension
	})

	fillRatios(&total)
	return groups, total
}

// fillRatios computes each category's share of the total. A group whose
// total is zero has all ratios zero rather than a division error.
func fillRatios(s *Summary) {
	if s.Total == 0 {
		return
	}
	t := float64(s.Total)
	s.CodeRatio = float64(s.Code) / t
	s.CommentRatio = float64(s.Comment) / t
	s.BlankRatio = float64(s.Blank) / t
}
