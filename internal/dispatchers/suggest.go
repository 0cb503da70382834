package dispatchers

import (
	"cmp"
	"slices"
	"strings"
)

// Edit distance up to which a command is offered as "did you mean". Prefix
// matches beyond it rank after every close match.
const (
	maxSuggestionDistance = 3
	prefixMatchDistance   = maxSuggestionDistance + 1
)

// levenshtein returns the case-insensitive edit distance between a and b,
// counted in runes.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	// row[j] holds the distance between ra[:i] and rb[:j] for the current i.
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			sub := diag
			if ra[i-1] != rb[j-1] {
				sub++
			}
			diag = row[j]
			row[j] = min(row[j]+1, row[j-1]+1, sub)
		}
	}
	return row[len(rb)]
}

// closeness scores name against what the user typed. Exact matches and
// unrelated names are not suggestions.
func closeness(input, name string) (int, bool) {
	d := levenshtein(input, name)
	switch {
	case d == 0:
		return 0, false
	case d <= maxSuggestionDistance:
		return d, true
	case strings.HasPrefix(name, strings.ToLower(input)):
		return prefixMatchDistance, true
	}
	return 0, false
}

// FindSimilarCommands returns up to maxResults subcommands of node that look
// like input, closest first and alphabetical within a distance.
func FindSimilarCommands(input string, node *DispatchNode, maxResults int) []string {
	if node == nil || len(node.Children) == 0 {
		return nil
	}

	type candidate struct {
		name  string
		score int
	}
	var candidates []candidate
	for name := range node.Children {
		if score, ok := closeness(input, name); ok {
			candidates = append(candidates, candidate{name, score})
		}
	}

	slices.SortFunc(candidates, func(a, b candidate) int {
		return cmp.Or(cmp.Compare(a.score, b.score), strings.Compare(a.name, b.name))
	})

	names := make([]string, 0, min(len(candidates), maxResults))
	for _, c := range candidates[:min(len(candidates), maxResults)] {
		names = append(names, c.name)
	}
	return names
}
