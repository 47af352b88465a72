// file: internals/features/school/reports/service/report_builder.go
package service

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/academics/classes/model"
	peopleModel "sekolahku_backend/internals/features/school/academics/people/model"
	schedModel "sekolahku_backend/internals/features/school/academics/schedules/model"
	resultService "sekolahku_backend/internals/features/school/grading/results/service"
)

/* =========================================================
   Report card shapes
   ========================================================= */

type ReportCardRow struct {
	SubjectName string   `json:"subject_name"`
	ExamType    string   `json:"exam_type"`
	Marks       *float64 `json:"marks,omitempty"`
	MaxMarks    float64  `json:"max_marks"`
	GradeLabel  *string  `json:"grade_label,omitempty"`
	IsAbsent    bool     `json:"is_absent"`
	IsPassed    bool     `json:"is_passed"`
}

// MarksDisplay is the printable marks cell: "AB" for absences, "-" when no
// marks are recorded.
func (r ReportCardRow) MarksDisplay() string {
	if r.IsAbsent {
		return "AB"
	}
	if r.Marks == nil {
		return "-"
	}
	return strconv.FormatFloat(*r.Marks, 'f', 2, 64)
}

type ReportCard struct {
	StudentID    uuid.UUID       `json:"student_id"`
	StudentName  string          `json:"student_name"`
	RollNo       string          `json:"roll_no"`
	ClassName    string          `json:"class_name"`
	AcademicYear string          `json:"academic_year"`
	Rows         []ReportCardRow `json:"rows"`

	TotalMarks    float64 `json:"total_marks"`
	TotalMaxMarks float64 `json:"total_max_marks"`
	Percentage    float64 `json:"percentage"`
	AllPassed     bool    `json:"all_passed"`
}

/* =========================================================
   ReportBuilder
   ========================================================= */

// HistorySource feeds published results into report cards.
type HistorySource interface {
	StudentHistory(studentID uuid.UUID, f resultService.StudentHistoryFilter) ([]resultService.StudentHistoryItem, error)
}

type ReportBuilder struct {
	DB      *gorm.DB
	History HistorySource
}

func NewReportBuilder(db *gorm.DB, history HistorySource) *ReportBuilder {
	return &ReportBuilder{DB: db, History: history}
}

// StudentReport builds one report card from published results under the
// calendar entry. A student with no published results yields nil.
func (b *ReportBuilder) StudentReport(studentID, calendarEntryID uuid.UUID) (*ReportCard, error) {
	var entry schedModel.CalendarEntryModel
	if err := b.DB.First(&entry, "calendar_entry_id = ?", calendarEntryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Calendar entry not found")
		}
		return nil, reportErr("load calendar entry", err)
	}

	var student peopleModel.StudentModel
	if err := b.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, reportErr("load student", err)
	}

	className := ""
	if student.StudentClassID != nil {
		var class classModel.ClassModel
		if err := b.DB.First(&class, "class_id = ?", *student.StudentClassID).Error; err == nil {
			className = class.ClassName
		}
	}

	examType := entry.CalendarEntryExamType
	items, err := b.History.StudentHistory(studentID, resultService.StudentHistoryFilter{
		AcademicYear:  entry.CalendarEntryAcademicYear,
		ExamType:      &examType,
		PublishedOnly: true,
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	card := &ReportCard{
		StudentID:    student.StudentID,
		StudentName:  student.StudentName,
		RollNo:       student.StudentRollNo,
		ClassName:    className,
		AcademicYear: entry.CalendarEntryAcademicYear,
		Rows:         make([]ReportCardRow, 0, len(items)),
		AllPassed:    true,
	}
	for _, it := range items {
		card.Rows = append(card.Rows, ReportCardRow{
			SubjectName: it.SubjectName,
			ExamType:    it.ExamType,
			Marks:       it.Marks,
			MaxMarks:    it.MaxMarks,
			GradeLabel:  it.GradeLabel,
			IsAbsent:    it.IsAbsent,
			IsPassed:    it.IsPassed,
		})
		card.TotalMaxMarks += it.MaxMarks
		if it.Marks != nil {
			card.TotalMarks += *it.Marks
		}
		if !it.IsPassed {
			card.AllPassed = false
		}
	}
	if card.TotalMaxMarks > 0 {
		card.Percentage = card.TotalMarks / card.TotalMaxMarks * 100
	}
	return card, nil
}

// ClassReports builds cards for every active student in the class, skipping
// students without a single published result. An empty class is a hard
// failure rather than an empty batch.
func (b *ReportBuilder) ClassReports(classID, calendarEntryID uuid.UUID) ([]ReportCard, error) {
	var students []peopleModel.StudentModel
	if err := b.DB.Where("student_class_id = ? AND student_is_active = true", classID).
		Order("student_roll_no ASC").
		Find(&students).Error; err != nil {
		return nil, reportErr("load students", err)
	}
	if len(students) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Class has no active students")
	}

	cards := make([]ReportCard, 0, len(students))
	for _, st := range students {
		card, err := b.StudentReport(st.StudentID, calendarEntryID)
		if err != nil {
			return nil, err
		}
		if card == nil {
			continue
		}
		cards = append(cards, *card)
	}
	if len(cards) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "No published results for this class and exam")
	}
	return cards, nil
}

func reportErr(step string, err error) error {
	log.Printf("[ReportBuilder] ERROR %s: %v", step, err)
	return fiber.NewError(fiber.StatusInternalServerError, "Report assembly failure")
}
