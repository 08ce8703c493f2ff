package pattern

// fullAlphabet is what the wildcard 'X' stands for, in canonical order.
const fullAlphabet = "NCSH"

// Expand compiles one pattern template into the list of concrete
// neighborhood strings it covers.
//
// Each position of the template contributes a choice of symbols: a literal
// character contributes itself, 'X' contributes the full alphabet N, C, S, H,
// and a bracketed set contributes its members in source order, with an 'X'
// inside the set splicing the full alphabet at its position. Characters
// outside the alphabet pass through as literals; Expand does not validate.
//
// The result is the Cartesian product over all positions, ordered so that
// the leftmost position varies slowest. A position with an empty choice, as
// produced by an empty set "[]", has no combinations at all, so the result
// is empty. Expansion is deterministic: equal templates expand to equal
// slices.
func Expand(template string) []string {
	choices := parseTemplate(template)
	results := []string{""}
	for _, choice := range choices {
		next := make([]string, 0, len(results)*len(choice))
		for _, prefix := range results {
			for _, ch := range choice {
				next = append(next, prefix+string(ch))
			}
		}
		results = next
	}
	// an empty template must not produce the empty combination
	filtered := results[:0]
	for _, r := range results {
		if r != "" {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// parseTemplate splits a template into per-position symbol choices.
func parseTemplate(template string) [][]byte {
	var choices [][]byte
	for i := 0; i < len(template); i++ {
		switch ch := template[i]; ch {
		case 'X':
			choices = append(choices, []byte(fullAlphabet))
		case '[':
			set := []byte{}
			for i++; i < len(template) && template[i] != ']'; i++ {
				if template[i] == 'X' {
					set = append(set, fullAlphabet...)
				} else {
					set = append(set, template[i])
				}
			}
			choices = append(choices, set)
		default:
			choices = append(choices, []byte{ch})
		}
	}
	return choices
}
