package csvfind

import "strings"

// splitLine parses one physical line into fields using a single-rune
// delimiter, enclosure and escape character. Inside an enclosure the
// delimiter loses its meaning and the escape character makes the next rune
// literal; a doubled enclosure rune also reads as a literal enclosure,
// matching the usual CSV convention.
func splitLine(line string, delimiter, enclosure, escape rune) []string {
	runes := []rune(line)
	fields := make([]string, 0, 8)

	var field strings.Builder
	inQuote := false

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inQuote && r == escape && i+1 < len(runes):
			field.WriteRune(runes[i+1])
			i++
		case r == enclosure:
			if inQuote && i+1 < len(runes) && runes[i+1] == enclosure {
				field.WriteRune(enclosure)
				i++
				continue
			}
			inQuote = !inQuote
		case r == delimiter && !inQuote:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, field.String())
	return fields
}

// joinFields renders fields back into one delimited line with every field
// wrapped in the enclosure character, for report bodies.
func joinFields(fields []string, delimiter, enclosure, escape rune) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteRune(delimiter)
		}
		b.WriteRune(enclosure)
		for _, r := range f {
			if r == enclosure || r == escape {
				b.WriteRune(escape)
			}
			b.WriteRune(r)
		}
		b.WriteRune(enclosure)
	}
	return b.String()
}

// isBlankFields reports whether every parsed field is empty. Such lines
// are skipped during scanning and do not count as data rows.
func isBlankFields(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}
