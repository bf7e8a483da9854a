package generation

import (
	"regexp"
	"slices"
)

// slotPattern matches a {slot_name} placeholder.
var slotPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Fill substitutes every {slot} in template with its value from slots.
// Substituted values are not rescanned, so a value containing braces is inserted verbatim.
func Fill(template string, slots map[string]string) (string, error) {
	var missing []string
	out := slotPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		value, ok := slots[name]
		if !ok {
			if !slices.Contains(missing, name) {
				missing = append(missing, name)
			}
			return match
		}
		return value
	})

	if len(missing) > 0 {
		return "", &FormatError{Template: template, Missing: missing}
	}
	return out, nil
}

// SlotNames lists the distinct slot names referenced by template, in order of first use.
func SlotNames(template string) []string {
	var names []string
	for _, m := range slotPattern.FindAllStringSubmatch(template, -1) {
		if !slices.Contains(names, m[1]) {
			names = append(names, m[1])
		}
	}
	return names
}
