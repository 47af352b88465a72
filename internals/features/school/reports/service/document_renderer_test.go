// file: internals/features/school/reports/service/document_renderer_test.go
package service

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func sampleCard(name, roll string) ReportCard {
	marks := 72.5
	label := "B"
	return ReportCard{
		StudentID:    uuid.New(),
		StudentName:  name,
		RollNo:       roll,
		ClassName:    "Grade 8A",
		AcademicYear: "2026/2027",
		Rows: []ReportCardRow{
			{SubjectName: "Mathematics", ExamType: "MIDTERM", Marks: &marks, MaxMarks: 100, GradeLabel: &label, IsPassed: true},
			{SubjectName: "Physics", ExamType: "MIDTERM", IsAbsent: true, MaxMarks: 100},
		},
		TotalMarks:    72.5,
		TotalMaxMarks: 200,
		Percentage:    36.25,
	}
}

func TestHTMLRendererEscapesAndRenders(t *testing.T) {
	card := sampleCard("Alice <script>", "8A-01")
	doc, err := HTMLRenderer{}.Render(card)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(doc)
	if strings.Contains(html, "<script>") {
		t.Errorf("student name was not escaped")
	}
	for _, want := range []string{"Mathematics", "Physics", "2026/2027", "Grade 8A", "AB"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered document missing %q", want)
		}
	}
}

func TestJSONRendererRoundTrips(t *testing.T) {
	card := sampleCard("Bob", "8A-02")
	doc, err := JSONRenderer{}.Render(card)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(doc), `"student_name": "Bob"`) {
		t.Errorf("json document missing student name: %s", doc)
	}
}

func TestPackBatch(t *testing.T) {
	cards := []ReportCard{
		sampleCard("Alice", "8A-01"),
		sampleCard("Bob", "8A-02"),
	}
	archive, err := PackBatch(cards, HTMLRenderer{})
	if err != nil {
		t.Fatalf("pack: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("zip entries = %d, want 2", len(zr.File))
	}
	for _, file := range zr.File {
		if !strings.HasSuffix(file.Name, ".html") {
			t.Errorf("entry %q does not carry the renderer extension", file.Name)
		}
		if strings.ContainsAny(file.Name, "/\\") {
			t.Errorf("entry %q contains a path separator", file.Name)
		}
	}
}

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Alice Smith", "Alice_Smith"},
		{"a/b\\c", "a-b-c"},
		{"   ", "report"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := safeFileName(tt.in); got != tt.want {
			t.Errorf("safeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
