package teams

import "strings"

// maxDisplayLen is the widest name the scoreboard layout renders cleanly.
const maxDisplayLen = 11

var directionAbbrevs = map[string]string{
	"North":   "N",
	"East":    "E",
	"South":   "S",
	"West":    "W",
	"Central": "C",
}

// shortenDisplayName squeezes a display name toward the preferred width by
// abbreviating a trailing "State" and a leading compass direction. Names that
// still overflow are kept as-is; the diagnostic report flags them for manual
// curation.
func shortenDisplayName(name string) string {
	if len(name) <= maxDisplayLen {
		return name
	}

	words := strings.Fields(name)
	if len(words) == 0 {
		return name
	}
	if words[len(words)-1] == "State" {
		words[len(words)-1] = "St"
	}
	if short, ok := directionAbbrevs[words[0]]; ok {
		words[0] = short
	}
	return strings.Join(words, " ")
}
