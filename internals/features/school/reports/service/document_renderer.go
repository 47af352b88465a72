// file: internals/features/school/reports/service/document_renderer.go
package service

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// DocumentRenderer turns one report card into a downloadable document.
// Swapping the renderer changes the output format without touching the
// builder or the batch packer.
type DocumentRenderer interface {
	Render(card ReportCard) ([]byte, error)
	// Ext is the file extension without the dot, e.g. "html".
	Ext() string
	ContentType() string
}

/* =========================================================
   HTML renderer: the default download format
   ========================================================= */

var reportTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Report Card - {{.StudentName}}</title></head>
<body>
<h1>Report Card</h1>
<p><b>{{.StudentName}}</b> (Roll {{.RollNo}}) / {{.ClassName}} / {{.AcademicYear}}</p>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Subject</th><th>Exam</th><th>Marks</th><th>Max</th><th>Grade</th><th>Status</th></tr>
{{range .Rows}}<tr>
<td>{{.SubjectName}}</td><td>{{.ExamType}}</td>
<td>{{.MarksDisplay}}</td>
<td>{{printf "%.2f" .MaxMarks}}</td>
<td>{{if .GradeLabel}}{{.GradeLabel}}{{else}}-{{end}}</td>
<td>{{if .IsAbsent}}Absent{{else if .IsPassed}}Pass{{else}}Fail{{end}}</td>
</tr>{{end}}
</table>
<p>Total: {{printf "%.2f" .TotalMarks}} / {{printf "%.2f" .TotalMaxMarks}} ({{printf "%.2f" .Percentage}}%)</p>
<p>Result: {{if .AllPassed}}PASSED{{else}}FAILED{{end}}</p>
</body>
</html>
`))

type HTMLRenderer struct{}

func (HTMLRenderer) Render(card ReportCard) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, card); err != nil {
		log.Printf("[DocumentRenderer] ERROR render %s: %v", card.StudentID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Report rendering failure")
	}
	return buf.Bytes(), nil
}

func (HTMLRenderer) Ext() string         { return "html" }
func (HTMLRenderer) ContentType() string { return fiber.MIMETextHTMLCharsetUTF8 }

/* =========================================================
   JSON renderer: machine-readable export
   ========================================================= */

type JSONRenderer struct{}

func (JSONRenderer) Render(card ReportCard) ([]byte, error) {
	raw, err := json.MarshalIndent(card, "", "  ")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Report rendering failure")
	}
	return raw, nil
}

func (JSONRenderer) Ext() string         { return "json" }
func (JSONRenderer) ContentType() string { return fiber.MIMEApplicationJSON }

/* =========================================================
   Batch packer
   ========================================================= */

// PackBatch renders every card and packs the documents into one zip,
// one file per student. A card whose render fails is logged and skipped
// rather than sinking the whole batch.
func PackBatch(cards []ReportCard, renderer DocumentRenderer) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, card := range cards {
		doc, err := renderer.Render(card)
		if err != nil {
			log.Printf("[ReportBatch] WARN skipping student %s: %v", card.StudentID, err)
			continue
		}
		name := fmt.Sprintf("%s_%s.%s", safeFileName(card.RollNo), safeFileName(card.StudentName), renderer.Ext())
		w, err := zw.Create(name)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Report packaging failure")
		}
		if _, err := w.Write(doc); err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Report packaging failure")
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Report packaging failure")
	}
	return buf.Bytes(), nil
}

func safeFileName(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer("/", "-", "\\", "-", " ", "_", "..", "-")
	out := replacer.Replace(s)
	if out == "" {
		return "report"
	}
	return out
}
