// Package csvfind scans delimited text files for rows that satisfy a set of
// typed, per-column predicates, without requiring the caller to know the
// file's delimiter, quoting style, or whether it has a header row.
//
// csvfind sniffs the delimiter from a fixed candidate set, decides header
// presence with a best-effort content heuristic, and evaluates every data
// row against a list of query conditions with AND semantics. Each scanned
// file yields a Result carrying the resolved format parameters, the header
// row when one was found, and the matched rows in scan order.
//
// # Basic Usage
//
// Open a source, search it, and release it:
//
//	src, err := csvfind.OpenSource("stock.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	cond, err := csvfind.NewCondition(csvfind.Column("stock"), csvfind.OpGreater, 15)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := src.FindBy(cond)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range res.Matches {
//	    fmt.Println(row.Fields())
//	}
//
// To scan a whole directory tree, use Find, which walks the tree, skips
// ineligible entries, and returns one Result per scanned file:
//
//	results, skipped, err := csvfind.Find("./data", conds)
//
// # Format Support
//
//   - Delimited text (.csv, .tsv), with any detected or declared single-rune
//     delimiter, enclosure (default '"') and escape (default '\') characters
//   - Transparently decompressed gzip, bzip2, xz, and zstandard variants
//   - Excel workbooks (.xlsx): every sheet is scanned with the same
//     condition engine; delimiter detection does not apply
//
// # Detection
//
// Both detections are heuristics, not guarantees. The delimiter is chosen
// by parsing the first five raw lines with each candidate and keeping the
// candidate that splits the most lines into more than one field. Header
// presence is judged by comparing a feature vector of row 0 (all fields
// non-numeric, any field looks like a date, an email, an IP, ...) against
// the same features of the following rows. Callers that know the format
// can bypass either detection with WithDelimiter and WithHeaders.
package csvfind
