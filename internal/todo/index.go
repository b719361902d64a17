package todo

import (
	"strconv"
	"strings"
)

// ParseIndex converts a user-supplied 1-based index. Anything that is not an
// integer >= 1 fails with KindParse.
func ParseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &Error{Op: "complete", Kind: KindParse, Detail: "got " + strconv.Quote(s)}
	}
	if n < 1 {
		return 0, &Error{Op: "complete", Kind: KindParse, Detail: "got " + strconv.Itoa(n)}
	}
	return n, nil
}
