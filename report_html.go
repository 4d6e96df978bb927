package csvfind

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

// htmlReportPage is the rendered report file name inside the target
// directory; htmlReportStyle is the stylesheet asset copied next to it.
const (
	htmlReportPage  = "index.html"
	htmlReportStyle = "style.css"
)

var htmlReportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>csvfind report</title>
<link rel="stylesheet" href="style.css">
</head>
<body>
<h1>Search: {{.Path}}</h1>
<h2>Conditions</h2>
<ul>
{{- range .Queries}}
<li><code>{{.Column}}</code> {{.Operator}} {{if .Tuple}}[{{.Lower}}, {{.Upper}}]{{else}}<code>{{.Value}}</code>{{end}} <span class="kind">({{.Kind}})</span></li>
{{- end}}
</ul>
{{- range .Files}}
<h2>{{.Path}}</h2>
<p>{{.Found}} of {{.Total}} rows matched</p>
<table>
{{- if .Headers}}
<tr><th>line</th>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{- end}}
{{- range .Rows}}
<tr><td>{{.Number}}</td>{{range .Fields}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</table>
{{- end}}
</body>
</html>
`))

const htmlReportCSS = `body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.6em; }
th { background: #f0f0f0; }
.kind { color: #888; }
`

type htmlReportData struct {
	Path    string
	Queries []htmlQuery
	Files   []htmlFile
}

type htmlQuery struct {
	Column   string
	Operator string
	Kind     string
	Value    string
	Tuple    bool
	Lower    string
	Upper    string
}

type htmlFile struct {
	Path    string
	Found   int
	Total   int
	Headers []string
	Rows    []htmlRow
}

type htmlRow struct {
	Number int
	Fields []string
}

// WriteHTMLReport renders a search as an HTML tree under targetDir,
// creating the directory when needed and copying the stylesheet asset
// next to the page. Files with no matches are left out of the page.
func WriteHTMLReport(targetDir, searchPath string, conditions []*QueryCondition, results []*Result) error {
	if err := os.MkdirAll(targetDir, 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	data := htmlReportData{Path: searchPath}
	for _, cond := range conditions {
		q := htmlQuery{
			Column:   cond.Column().String(),
			Operator: cond.Operator().String(),
			Kind:     cond.Kind(),
		}
		if lower, upper, ok := cond.Bounds(); ok {
			q.Tuple = true
			q.Lower = lower
			q.Upper = upper
		} else {
			q.Value = cond.Value()
		}
		data.Queries = append(data.Queries, q)
	}

	for _, res := range results {
		if len(res.Matches) == 0 {
			continue
		}
		file := htmlFile{
			Path:  res.Filename,
			Found: len(res.Matches),
			Total: res.TotalLines,
		}
		if res.Headers != nil {
			file.Headers = res.Headers.Fields()
		}
		for _, row := range res.Matches {
			file.Rows = append(file.Rows, htmlRow{Number: row.LineNumber(), Fields: row.Fields()})
		}
		data.Files = append(data.Files, file)
	}

	page, err := os.Create(filepath.Join(targetDir, htmlReportPage))
	if err != nil {
		return fmt.Errorf("create report page: %w", err)
	}
	defer func() { _ = page.Close() }()

	if err := htmlReportTemplate.Execute(page, data); err != nil {
		return fmt.Errorf("render report page: %w", err)
	}

	if err := os.WriteFile(filepath.Join(targetDir, htmlReportStyle), []byte(htmlReportCSS), 0o600); err != nil {
		return fmt.Errorf("write report stylesheet: %w", err)
	}
	return nil
}
