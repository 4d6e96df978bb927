package csvfind

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// detectDelimiter sniffs the field delimiter from the first raw physical
// lines of a file. Every candidate parses every line; a candidate scores a
// line when parsing yields more than one field. The candidate scoring the
// most lines wins, ties broken by candidate order. No score on any line at
// all fails with ErrDetection.
func detectDelimiter(lines []string, candidates []rune, enclosure, escape rune) (rune, error) {
	scores := make([]int, len(candidates))
	for _, line := range lines {
		for i, cand := range candidates {
			if len(splitLine(line, cand, enclosure, escape)) > 1 {
				scores[i]++
			}
		}
	}

	best := -1
	for i, score := range scores {
		if score > 0 && (best == -1 || score > scores[best]) {
			best = i
		}
	}
	if best == -1 {
		return 0, fmt.Errorf("%w: could not detect a delimiter from the first %d lines", ErrDetection, len(lines))
	}
	return candidates[best], nil
}

// rowFeatures is the boolean feature vector the header heuristic computes
// per row. The "any" features OR across the row's fields.
type rowFeatures struct {
	onlyNonNumeric bool
	onlyNumeric    bool
	anyBoolean     bool
	anyDomain      bool
	anyEmail       bool
	anyIP          bool
	anyMAC         bool
	anyURL         bool
	anyDate        bool
}

func (f rowFeatures) equal(other rowFeatures) bool {
	return f == other
}

func (f rowFeatures) and(other rowFeatures) rowFeatures {
	return rowFeatures{
		onlyNonNumeric: f.onlyNonNumeric && other.onlyNonNumeric,
		onlyNumeric:    f.onlyNumeric && other.onlyNumeric,
		anyBoolean:     f.anyBoolean && other.anyBoolean,
		anyDomain:      f.anyDomain && other.anyDomain,
		anyEmail:       f.anyEmail && other.anyEmail,
		anyIP:          f.anyIP && other.anyIP,
		anyMAC:         f.anyMAC && other.anyMAC,
		anyURL:         f.anyURL && other.anyURL,
		anyDate:        f.anyDate && other.anyDate,
	}
}

// featuresOf computes the feature vector for one parsed row.
func featuresOf(fields []string) rowFeatures {
	f := rowFeatures{onlyNonNumeric: true, onlyNumeric: true}
	for _, v := range fields {
		if isNumericField(v) {
			f.onlyNonNumeric = false
		} else {
			f.onlyNumeric = false
		}
		f.anyBoolean = f.anyBoolean || looksBoolean(v)
		f.anyDomain = f.anyDomain || looksDomain(v)
		f.anyEmail = f.anyEmail || looksEmail(v)
		f.anyIP = f.anyIP || looksIP(v)
		f.anyMAC = f.anyMAC || looksMAC(v)
		f.anyURL = f.anyURL || looksURL(v)
		f.anyDate = f.anyDate || isDatetime(v)
	}
	return f
}

// detectHeaders judges whether the first row is a header. It compares the
// first row's feature vector against the AND (all rows true) of the
// trailing rows' vectors: any differing feature means the first row does
// not look like the data and is taken as a header. Best-effort only.
func detectHeaders(first []string, trailing [][]string) bool {
	if len(trailing) == 0 {
		return false
	}

	all := featuresOf(trailing[0])
	for _, row := range trailing[1:] {
		all = all.and(featuresOf(row))
	}
	return !featuresOf(first).equal(all)
}

func isNumericField(v string) bool {
	if v == "" {
		return false
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

func looksBoolean(v string) bool {
	switch strings.ToLower(v) {
	case "true", "false":
		return true
	}
	return false
}

var domainRe = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

func looksDomain(v string) bool {
	return domainRe.MatchString(v)
}

var emailRe = regexp.MustCompile(`^[^@\s]+@([a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

func looksEmail(v string) bool {
	return emailRe.MatchString(v)
}

func looksIP(v string) bool {
	return net.ParseIP(v) != nil
}

func looksMAC(v string) bool {
	if _, err := net.ParseMAC(v); err != nil {
		return false
	}
	return true
}

func looksURL(v string) bool {
	u, err := url.Parse(v)
	return err == nil && u.Scheme != "" && u.Host != ""
}
