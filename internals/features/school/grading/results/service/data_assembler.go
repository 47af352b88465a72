// file: internals/features/school/grading/results/service/data_assembler.go
package service

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/academics/classes/model"
	peopleModel "sekolahku_backend/internals/features/school/academics/people/model"
	schedModel "sekolahku_backend/internals/features/school/academics/schedules/model"
	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	resultModel "sekolahku_backend/internals/features/school/grading/results/model"
)

/* =========================================================
   Grid shapes
   ========================================================= */

type GridSubject struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	SubjectCode string    `json:"subject_code"`
	ExamSlotID  uuid.UUID `json:"exam_slot_id"`
	MaxMarks    float64   `json:"max_marks"`
	PassMarks   float64   `json:"pass_marks"`
}

type GridStudent struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	RollNo      string    `json:"roll_no"`
}

type GridCell struct {
	ExamResultID uuid.UUID                    `json:"exam_result_id"`
	StudentID    uuid.UUID                    `json:"student_id"`
	SubjectID    uuid.UUID                    `json:"subject_id"`
	Marks        *float64                     `json:"marks,omitempty"`
	GradeLabel   *string                      `json:"grade_label,omitempty"`
	IsAbsent     bool                         `json:"is_absent"`
	IsPassed     bool                         `json:"is_passed"`
	Status       resultModel.ExamResultStatus `json:"status"`
}

type GridStatistics struct {
	TotalStudents int      `json:"total_students"`
	TotalSubjects int      `json:"total_subjects"`
	GradedCount   int      `json:"graded_count"`
	PendingCount  int      `json:"pending_count"`
	AbsentCount   int      `json:"absent_count"`
	PassCount     int      `json:"pass_count"`
	FailCount     int      `json:"fail_count"`
	AverageMarks  *float64 `json:"average_marks,omitempty"`
	HighestMarks  *float64 `json:"highest_marks,omitempty"`
	LowestMarks   *float64 `json:"lowest_marks,omitempty"`
}

type GradingGrid struct {
	ClassID         uuid.UUID      `json:"class_id"`
	CalendarEntryID uuid.UUID      `json:"calendar_entry_id"`
	// Zero when the grid spans every schedule of the calendar entry.
	ExamScheduleID uuid.UUID      `json:"exam_schedule_id,omitempty"`
	Subjects       []GridSubject  `json:"subjects"`
	Students       []GridStudent  `json:"students"`
	Cells          []GridCell     `json:"cells"`
	Statistics     GridStatistics `json:"statistics"`
}

// SubjectClassGrid is one class column of a subject overview.
type SubjectClassGrid struct {
	ClassID        uuid.UUID      `json:"class_id"`
	ExamScheduleID uuid.UUID      `json:"exam_schedule_id"`
	ExamSlotID     uuid.UUID      `json:"exam_slot_id"`
	Students       []GridStudent  `json:"students"`
	Cells          []GridCell     `json:"cells"`
	Statistics     GridStatistics `json:"statistics"`
}

// SubjectOverview aggregates one subject's results across the classes of a
// calendar entry.
type SubjectOverview struct {
	CalendarEntryID uuid.UUID          `json:"calendar_entry_id"`
	SubjectID       uuid.UUID          `json:"subject_id"`
	SubjectName     string             `json:"subject_name"`
	SubjectCode     string             `json:"subject_code"`
	MaxMarks        float64            `json:"max_marks"`
	PassMarks       float64            `json:"pass_marks"`
	Classes         []SubjectClassGrid `json:"classes"`
	Statistics      GridStatistics     `json:"statistics"`
}

type StudentHistoryFilter struct {
	AcademicYear string
	ClassID      *uuid.UUID
	SubjectID    *uuid.UUID
	ExamType     *string
	// Restrict to results already visible to students.
	PublishedOnly bool
}

type StudentHistoryItem struct {
	ExamResultID uuid.UUID                    `json:"exam_result_id"`
	AcademicYear string                       `json:"academic_year"`
	ExamType     string                       `json:"exam_type"`
	ScheduleName string                       `json:"schedule_name"`
	SubjectID    uuid.UUID                    `json:"subject_id"`
	SubjectName  string                       `json:"subject_name"`
	Marks        *float64                     `json:"marks,omitempty"`
	MaxMarks     float64                      `json:"max_marks"`
	GradeLabel   *string                      `json:"grade_label,omitempty"`
	IsAbsent     bool                         `json:"is_absent"`
	IsPassed     bool                         `json:"is_passed"`
	Status       resultModel.ExamResultStatus `json:"status"`
}

/* =========================================================
   DataAssembler
   ========================================================= */

// DataAssembler builds read-only grading views. It never mutates results;
// every write goes through the result store.
type DataAssembler struct {
	DB    *gorm.DB
	Perms PermissionDecider
}

func NewDataAssembler(db *gorm.DB, perms PermissionDecider) *DataAssembler {
	return &DataAssembler{DB: db, Perms: perms}
}

// ClassGrid assembles the full class-by-subject grid for one schedule.
// Subjects the actor cannot grade are dropped from the grid rather than
// failing the whole view.
func (a *DataAssembler) ClassGrid(examScheduleID, classID uuid.UUID, actor Actor) (*GradingGrid, error) {
	var sched schedModel.ExamScheduleModel
	if err := a.DB.First(&sched, "exam_schedule_id = ?", examScheduleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Exam schedule not found")
		}
		return nil, assemblerErr("load schedule", err)
	}
	if !sched.AppliesToClass(classID) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Exam schedule does not apply to this class")
	}

	var slots []schedModel.ExamSlotModel
	if err := a.DB.Where("exam_slot_exam_schedule_id = ?", examScheduleID).
		Order("exam_slot_date ASC, exam_slot_start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, assemblerErr("load slots", err)
	}

	subjects, slotIDs, err := a.gradableSubjects(slots, classID, actor)
	if err != nil {
		return nil, err
	}

	students, err := a.classStudents(classID)
	if err != nil {
		return nil, err
	}

	cells, err := a.cellsForSlots(slotIDs, slots, students)
	if err != nil {
		return nil, err
	}

	grid := &GradingGrid{
		ClassID:         classID,
		CalendarEntryID: sched.ExamScheduleCalendarEntryID,
		ExamScheduleID:  examScheduleID,
		Subjects:        subjects,
		Students:        students,
		Cells:           cells,
	}
	grid.Statistics = ComputeGridStatistics(len(students), len(subjects), cells)
	return grid, nil
}

// EntryClassGrid assembles the class grid across every schedule of one
// calendar entry that applies to the class.
func (a *DataAssembler) EntryClassGrid(calendarEntryID, classID uuid.UUID, actor Actor) (*GradingGrid, error) {
	var schedules []schedModel.ExamScheduleModel
	if err := a.DB.Where("exam_schedule_calendar_entry_id = ?", calendarEntryID).
		Find(&schedules).Error; err != nil {
		return nil, assemblerErr("load schedules", err)
	}
	applying := make([]uuid.UUID, 0, len(schedules))
	for i := range schedules {
		if schedules[i].AppliesToClass(classID) {
			applying = append(applying, schedules[i].ExamScheduleID)
		}
	}
	if len(applying) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "No exam schedule for this class under the calendar entry")
	}

	var slots []schedModel.ExamSlotModel
	if err := a.DB.Where("exam_slot_exam_schedule_id IN ?", applying).
		Order("exam_slot_date ASC, exam_slot_start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, assemblerErr("load slots", err)
	}

	subjects, slotIDs, err := a.gradableSubjects(slots, classID, actor)
	if err != nil {
		return nil, err
	}
	students, err := a.classStudents(classID)
	if err != nil {
		return nil, err
	}
	cells, err := a.cellsForSlots(slotIDs, slots, students)
	if err != nil {
		return nil, err
	}

	grid := &GradingGrid{
		ClassID:         classID,
		CalendarEntryID: calendarEntryID,
		Subjects:        subjects,
		Students:        students,
		Cells:           cells,
	}
	grid.Statistics = ComputeGridStatistics(len(students), len(subjects), cells)
	return grid, nil
}

// SubjectGrid assembles a one-subject column of the grid. Unlike ClassGrid
// it fails hard when the actor cannot grade the subject.
func (a *DataAssembler) SubjectGrid(examSlotID, classID uuid.UUID, actor Actor) (*GradingGrid, error) {
	var slot schedModel.ExamSlotModel
	if err := a.DB.First(&slot, "exam_slot_id = ?", examSlotID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Exam slot not found")
		}
		return nil, assemblerErr("load slot", err)
	}

	decision, err := a.Perms.CanGrade(actor.Role, actor.UserID, slot.ExamSlotSubjectID, classID)
	if err != nil {
		return nil, err
	}
	if err := decision.Err(); err != nil {
		return nil, err
	}

	var subject subjectModel.SubjectModel
	if err := a.DB.First(&subject, "subject_id = ?", slot.ExamSlotSubjectID).Error; err != nil {
		return nil, assemblerErr("load subject", err)
	}
	var sched schedModel.ExamScheduleModel
	if err := a.DB.First(&sched, "exam_schedule_id = ?", slot.ExamSlotExamScheduleID).Error; err != nil {
		return nil, assemblerErr("load schedule", err)
	}
	if !sched.AppliesToClass(classID) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Exam schedule does not apply to this class")
	}

	students, err := a.classStudents(classID)
	if err != nil {
		return nil, err
	}
	cells, err := a.cellsForSlots([]uuid.UUID{slot.ExamSlotID}, []schedModel.ExamSlotModel{slot}, students)
	if err != nil {
		return nil, err
	}

	grid := &GradingGrid{
		ClassID:         classID,
		CalendarEntryID: sched.ExamScheduleCalendarEntryID,
		ExamScheduleID:  slot.ExamSlotExamScheduleID,
		Subjects: []GridSubject{{
			SubjectID:   subject.SubjectID,
			SubjectName: subject.SubjectName,
			SubjectCode: subject.SubjectCode,
			ExamSlotID:  slot.ExamSlotID,
			MaxMarks:    subject.SubjectMaxMarks,
			PassMarks:   subject.SubjectPassMarks,
		}},
		Students: students,
		Cells:    cells,
	}
	grid.Statistics = ComputeGridStatistics(len(students), 1, cells)
	return grid, nil
}

// SubjectEntryGrid aggregates a subject's results across the classes sitting
// the given calendar entry. With an explicit class list, a class outside the
// subject's schedules or outside the actor's grants fails the whole view;
// without one, the classes are resolved from the schedules and out-of-grant
// classes are dropped.
func (a *DataAssembler) SubjectEntryGrid(subjectID, calendarEntryID uuid.UUID, classIDs []uuid.UUID, actor Actor) (*SubjectOverview, error) {
	var subject subjectModel.SubjectModel
	if err := a.DB.First(&subject, "subject_id = ?", subjectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return nil, assemblerErr("load subject", err)
	}

	var schedules []schedModel.ExamScheduleModel
	if err := a.DB.Where("exam_schedule_calendar_entry_id = ?", calendarEntryID).
		Find(&schedules).Error; err != nil {
		return nil, assemblerErr("load schedules", err)
	}
	if len(schedules) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "No exam schedules under this calendar entry")
	}
	schedByID := make(map[uuid.UUID]*schedModel.ExamScheduleModel, len(schedules))
	scheduleIDs := make([]uuid.UUID, 0, len(schedules))
	for i := range schedules {
		schedByID[schedules[i].ExamScheduleID] = &schedules[i]
		scheduleIDs = append(scheduleIDs, schedules[i].ExamScheduleID)
	}

	var slots []schedModel.ExamSlotModel
	if err := a.DB.Where("exam_slot_exam_schedule_id IN ? AND exam_slot_subject_id = ?", scheduleIDs, subjectID).
		Order("exam_slot_date ASC, exam_slot_start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, assemblerErr("load slots", err)
	}
	if len(slots) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "No exam slot for this subject under the calendar entry")
	}

	explicit := len(classIDs) > 0
	targets := classIDs
	if !explicit {
		resolved, err := a.scheduleClassTargets(slots, schedByID)
		if err != nil {
			return nil, err
		}
		targets = resolved
	}

	overview := &SubjectOverview{
		CalendarEntryID: calendarEntryID,
		SubjectID:       subject.SubjectID,
		SubjectName:     subject.SubjectName,
		SubjectCode:     subject.SubjectCode,
		MaxMarks:        subject.SubjectMaxMarks,
		PassMarks:       subject.SubjectPassMarks,
		Classes:         make([]SubjectClassGrid, 0, len(targets)),
	}
	allCells := make([]GridCell, 0)
	totalStudents := 0
	for _, classID := range targets {
		slot := firstSlotForClass(slots, schedByID, classID)
		if slot == nil {
			if explicit {
				return nil, fiber.NewError(fiber.StatusBadRequest, "No schedule for this subject applies to class "+classID.String())
			}
			continue
		}
		decision, err := a.Perms.CanGrade(actor.Role, actor.UserID, subjectID, classID)
		if err != nil {
			return nil, err
		}
		if !decision.Allowed {
			if explicit {
				return nil, decision.Err()
			}
			continue
		}
		students, err := a.classStudents(classID)
		if err != nil {
			return nil, err
		}
		cells, err := a.cellsForSlots([]uuid.UUID{slot.ExamSlotID}, []schedModel.ExamSlotModel{*slot}, students)
		if err != nil {
			return nil, err
		}
		overview.Classes = append(overview.Classes, SubjectClassGrid{
			ClassID:        classID,
			ExamScheduleID: slot.ExamSlotExamScheduleID,
			ExamSlotID:     slot.ExamSlotID,
			Students:       students,
			Cells:          cells,
			Statistics:     ComputeGridStatistics(len(students), 1, cells),
		})
		allCells = append(allCells, cells...)
		totalStudents += len(students)
	}
	overview.Statistics = ComputeGridStatistics(totalStudents, 1, allCells)
	return overview, nil
}

// StudentHistory lists a student's results across slots, newest exam first.
func (a *DataAssembler) StudentHistory(studentID uuid.UUID, f StudentHistoryFilter) ([]StudentHistoryItem, error) {
	q := a.DB.Table("exam_results er").
		Select(`er.exam_result_id, er.exam_result_marks_obtained, er.exam_result_grade_label,
			er.exam_result_is_absent, er.exam_result_is_passed, er.exam_result_status,
			es.exam_slot_subject_id, sub.subject_name, sub.subject_max_marks,
			sch.exam_schedule_name, ce.calendar_entry_academic_year, ce.calendar_entry_exam_type`).
		Joins("JOIN exam_slots es ON es.exam_slot_id = er.exam_result_exam_slot_id").
		Joins("JOIN exam_schedules sch ON sch.exam_schedule_id = es.exam_slot_exam_schedule_id").
		Joins("JOIN calendar_entries ce ON ce.calendar_entry_id = sch.exam_schedule_calendar_entry_id").
		Joins("JOIN subjects sub ON sub.subject_id = es.exam_slot_subject_id").
		Where("er.exam_result_student_id = ?", studentID).
		Where("er.exam_result_deleted_at IS NULL").
		Order("ce.calendar_entry_start_date DESC, es.exam_slot_date ASC")

	if f.AcademicYear != "" {
		q = q.Where("ce.calendar_entry_academic_year = ?", f.AcademicYear)
	}
	if f.ClassID != nil {
		// An empty schedule class list means the schedule applies everywhere.
		q = q.Where(`(sch.exam_schedule_class_ids IS NULL
			OR cardinality(sch.exam_schedule_class_ids) = 0
			OR ? = ANY(sch.exam_schedule_class_ids))`, *f.ClassID)
	}
	if f.SubjectID != nil {
		q = q.Where("es.exam_slot_subject_id = ?", *f.SubjectID)
	}
	if f.ExamType != nil && *f.ExamType != "" {
		q = q.Where("ce.calendar_entry_exam_type = ?", *f.ExamType)
	}
	if f.PublishedOnly {
		q = q.Where("er.exam_result_status = ?", resultModel.ExamResultStatusPublished)
	}

	type historyRow struct {
		ExamResultID              uuid.UUID
		ExamResultMarksObtained   *float64
		ExamResultGradeLabel      *string
		ExamResultIsAbsent        bool
		ExamResultIsPassed        bool
		ExamResultStatus          resultModel.ExamResultStatus
		ExamSlotSubjectID         uuid.UUID
		SubjectName               string
		SubjectMaxMarks           float64
		ExamScheduleName          string
		CalendarEntryAcademicYear string
		CalendarEntryExamType     string
	}
	var rows []historyRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, assemblerErr("load history", err)
	}

	items := make([]StudentHistoryItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, StudentHistoryItem{
			ExamResultID: r.ExamResultID,
			AcademicYear: r.CalendarEntryAcademicYear,
			ExamType:     r.CalendarEntryExamType,
			ScheduleName: r.ExamScheduleName,
			SubjectID:    r.ExamSlotSubjectID,
			SubjectName:  r.SubjectName,
			Marks:        r.ExamResultMarksObtained,
			MaxMarks:     r.SubjectMaxMarks,
			GradeLabel:   r.ExamResultGradeLabel,
			IsAbsent:     r.ExamResultIsAbsent,
			IsPassed:     r.ExamResultIsPassed,
			Status:       r.ExamResultStatus,
		})
	}
	return items, nil
}

/* =========================================================
   Internals
   ========================================================= */

func (a *DataAssembler) gradableSubjects(slots []schedModel.ExamSlotModel, classID uuid.UUID, actor Actor) ([]GridSubject, []uuid.UUID, error) {
	subjects := make([]GridSubject, 0, len(slots))
	slotIDs := make([]uuid.UUID, 0, len(slots))
	for _, slot := range slots {
		decision, err := a.Perms.CanGrade(actor.Role, actor.UserID, slot.ExamSlotSubjectID, classID)
		if err != nil {
			return nil, nil, err
		}
		if !decision.Allowed {
			continue
		}
		var subject subjectModel.SubjectModel
		if err := a.DB.First(&subject, "subject_id = ?", slot.ExamSlotSubjectID).Error; err != nil {
			return nil, nil, assemblerErr("load subject", err)
		}
		subjects = append(subjects, GridSubject{
			SubjectID:   subject.SubjectID,
			SubjectName: subject.SubjectName,
			SubjectCode: subject.SubjectCode,
			ExamSlotID:  slot.ExamSlotID,
			MaxMarks:    subject.SubjectMaxMarks,
			PassMarks:   subject.SubjectPassMarks,
		})
		slotIDs = append(slotIDs, slot.ExamSlotID)
	}
	return subjects, slotIDs, nil
}

// scheduleClassTargets resolves the class list of a subject overview from the
// slots' schedules. A schedule with an empty class list applies to every
// active class.
func (a *DataAssembler) scheduleClassTargets(slots []schedModel.ExamSlotModel, schedByID map[uuid.UUID]*schedModel.ExamScheduleModel) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool)
	targets := make([]uuid.UUID, 0)
	allClasses := false
	for _, slot := range slots {
		sched := schedByID[slot.ExamSlotExamScheduleID]
		if sched == nil {
			continue
		}
		if len(sched.ExamScheduleClassIDs) == 0 {
			allClasses = true
			continue
		}
		for _, raw := range sched.ExamScheduleClassIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				continue
			}
			if !seen[id] {
				seen[id] = true
				targets = append(targets, id)
			}
		}
	}
	if allClasses {
		var classes []classModel.ClassModel
		if err := a.DB.Where("class_is_active = true").
			Order("class_name ASC").
			Find(&classes).Error; err != nil {
			return nil, assemblerErr("load classes", err)
		}
		for _, c := range classes {
			if !seen[c.ClassID] {
				seen[c.ClassID] = true
				targets = append(targets, c.ClassID)
			}
		}
	}
	return targets, nil
}

func firstSlotForClass(slots []schedModel.ExamSlotModel, schedByID map[uuid.UUID]*schedModel.ExamScheduleModel, classID uuid.UUID) *schedModel.ExamSlotModel {
	for i := range slots {
		sched := schedByID[slots[i].ExamSlotExamScheduleID]
		if sched != nil && sched.AppliesToClass(classID) {
			return &slots[i]
		}
	}
	return nil
}

func (a *DataAssembler) classStudents(classID uuid.UUID) ([]GridStudent, error) {
	var models []peopleModel.StudentModel
	if err := a.DB.Where("student_class_id = ? AND student_is_active = true", classID).
		Order("student_roll_no ASC, student_name ASC").
		Find(&models).Error; err != nil {
		return nil, assemblerErr("load students", err)
	}
	students := make([]GridStudent, 0, len(models))
	for _, m := range models {
		students = append(students, GridStudent{
			StudentID:   m.StudentID,
			StudentName: m.StudentName,
			RollNo:      m.StudentRollNo,
		})
	}
	return students, nil
}

// cellsForSlots loads result cells for the given slots, restricted to the
// grid's own students. Slots are shared between classes on a multi-class
// schedule, so the student filter keeps other classes' rows out of the grid.
func (a *DataAssembler) cellsForSlots(slotIDs []uuid.UUID, slots []schedModel.ExamSlotModel, students []GridStudent) ([]GridCell, error) {
	if len(slotIDs) == 0 || len(students) == 0 {
		return []GridCell{}, nil
	}
	subjectBySlot := make(map[uuid.UUID]uuid.UUID, len(slots))
	for _, s := range slots {
		subjectBySlot[s.ExamSlotID] = s.ExamSlotSubjectID
	}
	studentIDs := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		studentIDs = append(studentIDs, s.StudentID)
	}

	var results []resultModel.ExamResultModel
	if err := a.DB.Where("exam_result_exam_slot_id IN ? AND exam_result_student_id IN ?", slotIDs, studentIDs).
		Find(&results).Error; err != nil {
		return nil, assemblerErr("load results", err)
	}
	cells := make([]GridCell, 0, len(results))
	for _, r := range results {
		cells = append(cells, GridCell{
			ExamResultID: r.ExamResultID,
			StudentID:    r.ExamResultStudentID,
			SubjectID:    subjectBySlot[r.ExamResultExamSlotID],
			Marks:        r.ExamResultMarksObtained,
			GradeLabel:   r.ExamResultGradeLabel,
			IsAbsent:     r.ExamResultIsAbsent,
			IsPassed:     r.ExamResultIsPassed,
			Status:       r.ExamResultStatus,
		})
	}
	return cells, nil
}

// ComputeGridStatistics aggregates cell data for the grid footer. A pending
// cell is a (student, subject) pair with no result row yet.
func ComputeGridStatistics(totalStudents, totalSubjects int, cells []GridCell) GridStatistics {
	stats := GridStatistics{
		TotalStudents: totalStudents,
		TotalSubjects: totalSubjects,
		GradedCount:   len(cells),
	}
	stats.PendingCount = totalStudents*totalSubjects - stats.GradedCount
	if stats.PendingCount < 0 {
		stats.PendingCount = 0
	}

	var sum float64
	var counted int
	for _, c := range cells {
		if c.IsAbsent {
			stats.AbsentCount++
			continue
		}
		if c.IsPassed {
			stats.PassCount++
		} else {
			stats.FailCount++
		}
		if c.Marks == nil {
			continue
		}
		v := *c.Marks
		sum += v
		counted++
		if stats.HighestMarks == nil || v > *stats.HighestMarks {
			high := v
			stats.HighestMarks = &high
		}
		if stats.LowestMarks == nil || v < *stats.LowestMarks {
			low := v
			stats.LowestMarks = &low
		}
	}
	if counted > 0 {
		avg := sum / float64(counted)
		stats.AverageMarks = &avg
	}
	return stats
}

func assemblerErr(step string, err error) error {
	log.Printf("[DataAssembler] ERROR %s: %v", step, err)
	return fiber.NewError(fiber.StatusInternalServerError, "Grading view assembly failure")
}
