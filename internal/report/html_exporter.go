package report

import (
	"html/template"
	"os"

	"github.com/CloudyJayC/DocumentScannerAI/pkg/types"
)

// HTMLExporter renders the report through html/template, so resume-derived
// content is escaped and can never inject markup.
type HTMLExporter struct{}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>DocumentScannerAI Report</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { border-bottom: 2px solid #444; padding-bottom: 0.2em; }
h2 { margin-top: 1.5em; }
.meta { color: #666; }
.warn { color: #a40000; font-weight: bold; }
.clean { color: #006400; }
.fallback { color: #8a6d00; font-style: italic; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: left; }
</style>
</head>
<body>
<h1>DocumentScannerAI Report</h1>
<p class="meta">Generated: {{.Data.ScannedAt.Format "2006-01-02 15:04:05"}}<br>
Analyzed file: {{.Data.FilePath}}</p>

<h2>Security Scan</h2>
{{if .Flagged}}
<p class="warn">Suspicious PDF elements detected:</p>
<table><tr><th>Element</th><th>Count</th></tr>
{{range .Flagged}}<tr><td>{{.Word}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
{{else}}
<p class="clean">No suspicious elements found. File is clean.</p>
{{end}}

<h2>Keyword Analysis</h2>
<p>Word count: {{.Data.Keywords.WordCount}}<br>
Unique words: {{.Data.Keywords.UniqueWords}}</p>
<table><tr><th>Keyword</th><th>Count</th></tr>
{{range .Data.Keywords.Keywords}}<tr><td>{{.Word}}</td><td>{{.Count}}</td></tr>
{{end}}</table>

<h2>AI Resume Analysis</h2>
{{if .IsFallback}}<p class="fallback">AI response could not be parsed; showing generic analysis.</p>{{end}}
<p><strong>Overall impression:</strong> {{.Data.Analysis.OverallImpression}}</p>
<h3>Strengths</h3>
<ul>{{range .Data.Analysis.Strengths}}<li>{{.}}</li>{{end}}</ul>
<h3>Weaknesses</h3>
<ul>{{range .Data.Analysis.Weaknesses}}<li>{{.}}</li>{{end}}</ul>
<h3>Key Skills</h3>
<ul>{{range .Data.Analysis.KeySkills}}<li>{{.}}</li>{{end}}</ul>
<h3>Recommendations</h3>
<ul>{{range .Data.Analysis.Recommendations}}<li>{{.}}</li>{{end}}</ul>
</body>
</html>
`))

type htmlContext struct {
	Data       *types.ReportData
	Flagged    []types.KeywordFrequency
	IsFallback bool
}

func (e *HTMLExporter) Export(data *types.ReportData, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return htmlTemplate.Execute(f, htmlContext{
		Data:       data,
		Flagged:    flaggedMarkers(data.Suspicious),
		IsFallback: data.AnalysisSource == types.SourceFallback,
	})
}
