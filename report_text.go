package csvfind

import (
	"fmt"
	"io"
	"strings"
)

// WriteTextReport renders a plain-text report of a search to w. It is a
// pure function of the search path, the conditions, and the results; it
// contains no matching logic of its own.
func WriteTextReport(w io.Writer, searchPath string, conditions []*QueryCondition, results []*Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Search: %s\n", searchPath)
	for _, cond := range conditions {
		if lower, upper, ok := cond.Bounds(); ok {
			fmt.Fprintf(&b, "  where %s %s [%s, %s]\n", cond.Column(), cond.Operator(), lower, upper)
			continue
		}
		if cond.Operator().isEmptiness() {
			fmt.Fprintf(&b, "  where %s %s\n", cond.Column(), cond.Operator())
			continue
		}
		fmt.Fprintf(&b, "  where %s %s %q\n", cond.Column(), cond.Operator(), cond.Value())
	}
	b.WriteString("\n")

	totalMatches := 0
	for _, res := range results {
		if len(res.Matches) == 0 {
			continue
		}
		totalMatches += len(res.Matches)

		fmt.Fprintf(&b, "%s (%d of %d rows)\n", res.Filename, len(res.Matches), res.TotalLines)
		if res.Headers != nil {
			fmt.Fprintf(&b, "  header: %s\n", strings.Join(res.Headers.Fields(), string(res.Delimiter)))
		}
		for _, row := range res.Matches {
			fmt.Fprintf(&b, "  %6d: %s\n", row.LineNumber(),
				joinFields(row.Fields(), res.Delimiter, res.Enclosure, res.Escape))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%d matching rows in %d files\n", totalMatches, len(results))

	_, err := io.WriteString(w, b.String())
	return err
}
