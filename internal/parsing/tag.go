// Package parsing recognises the textual forms a user may type for a tag.
package parsing

import (
	"regexp"
	"strconv"

	"github.com/simonhull/dcmcsv/internal/types"
)

// tagPatterns lists the accepted numeric spellings in priority order. Each
// captures the group and element as exactly four hex digits.
var tagPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([0-9A-Fa-f]{4})([0-9A-Fa-f]{4})$`),       // "00100010"
	regexp.MustCompile(`^([0-9A-Fa-f]{4}),([0-9A-Fa-f]{4})$`),      // "0010,0010"
	regexp.MustCompile(`^\(([0-9A-Fa-f]{4}),([0-9A-Fa-f]{4})\)$`), // "(0010,0010)"
}

// ParseNumericTag parses s as a numeric tag. It reports false when s matches
// none of the accepted forms; keyword lookup is left to the caller.
func ParseNumericTag(s string) (types.Tag, bool) {
	for _, re := range tagPatterns {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		v, err := strconv.ParseUint(m[1]+m[2], 16, 32)
		if err != nil {
			return types.Tag{}, false
		}
		return types.TagFromUint32(uint32(v)), true
	}
	return types.Tag{}, false
}
