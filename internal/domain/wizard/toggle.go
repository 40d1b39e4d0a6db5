package wizard

import "slices"

// Toggle flips item in set. Selecting exclusive replaces the whole set with
// it; selecting anything else drops exclusive. The input is never mutated.
func Toggle(set []string, item, exclusive string) []string {
	if item == exclusive {
		return []string{exclusive}
	}

	out := make([]string, 0, len(set)+1)
	found := false
	for _, s := range set {
		if s == exclusive {
			continue
		}
		if s == item {
			found = true

			continue
		}
		out = append(out, s)
	}

	if !found {
		out = append(out, item)
	}

	return out
}

// ToggleCapped flips item in set, refusing to add once set holds max members.
func ToggleCapped(set []string, item string, maxItems int) []string {
	if idx := slices.Index(set, item); idx >= 0 {
		return slices.Delete(slices.Clone(set), idx, idx+1)
	}

	if len(set) >= maxItems {
		return slices.Clone(set)
	}

	return append(slices.Clone(set), item)
}

// ExclusiveHonored reports whether set either is exactly {exclusive} or does
// not contain it.
func ExclusiveHonored(set []string, exclusive string) bool {
	return len(set) <= 1 || !slices.Contains(set, exclusive)
}
