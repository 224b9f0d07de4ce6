// ABOUTME: "Did you mean" ranking of installed package names for a missing target
// ABOUTME: Thin use of sahilm/fuzzy; best matches first

package fetch

import "github.com/sahilm/fuzzy"

// Suggest returns up to limit candidates that fuzzily match name, best first.
// name itself is never suggested.
func Suggest(name string, candidates []string, limit int) []string {
	if name == "" || limit <= 0 {
		return nil
	}
	var out []string
	for _, m := range fuzzy.Find(name, candidates) {
		if m.Str == name {
			continue
		}
		out = append(out, m.Str)
		if len(out) == limit {
			break
		}
	}
	return out
}
