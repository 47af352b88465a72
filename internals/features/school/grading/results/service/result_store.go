// file: internals/features/school/grading/results/service/result_store.go
package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	peopleModel "sekolahku_backend/internals/features/school/academics/people/model"
	schedModel "sekolahku_backend/internals/features/school/academics/schedules/model"
	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	permService "sekolahku_backend/internals/features/school/grading/permissions/service"
	resultModel "sekolahku_backend/internals/features/school/grading/results/model"
	scaleModel "sekolahku_backend/internals/features/school/grading/scales/model"
)

/* =========================================================
   Collaborator interfaces: concrete impls are the
   permission evaluator and the scale registry; fakes stand
   in for tests.
   ========================================================= */

type PermissionDecider interface {
	CanGrade(role string, userID, subjectID, classID uuid.UUID) (permService.Decision, error)
	CanModify(role string, userID, subjectID, classID uuid.UUID) (permService.Decision, error)
}

type ScaleSource interface {
	DefaultForYear(academicYear string) (*scaleModel.GradingScaleModel, error)
}

// Actor is the authenticated user performing a grading mutation.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

/* =========================================================
   Inputs
   ========================================================= */

type UpsertResultInput struct {
	ExamSlotID uuid.UUID
	StudentID  uuid.UUID
	// ClassID scopes the permission check; resolved from the student's
	// enrollment when zero.
	ClassID uuid.UUID

	MarksObtained     *float64
	GradeDefinitionID *uuid.UUID
	Remarks           *string
	IsAbsent          bool

	// Required when the (slot, student) pair already has a result.
	ModificationReason string
}

/* =========================================================
   ResultStore
   ========================================================= */

type ResultStore struct {
	DB     *gorm.DB
	Perms  PermissionDecider
	Scales ScaleSource
}

func NewResultStore(db *gorm.DB, perms PermissionDecider, scales ScaleSource) *ResultStore {
	return &ResultStore{DB: db, Perms: perms, Scales: scales}
}

// slotContext carries everything a mutation needs around one exam slot.
type slotContext struct {
	Slot         schedModel.ExamSlotModel
	Subject      subjectModel.SubjectModel
	Schedule     schedModel.ExamScheduleModel
	AcademicYear string
}

func (s *ResultStore) loadSlotContext(slotID uuid.UUID) (*slotContext, error) {
	var ctx slotContext

	if err := s.DB.First(&ctx.Slot, "exam_slot_id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Exam slot not found")
		}
		return nil, storeErr("load exam slot", err)
	}

	if err := s.DB.First(&ctx.Subject, "subject_id = ?", ctx.Slot.ExamSlotSubjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Subject for exam slot not found")
		}
		return nil, storeErr("load subject", err)
	}

	if err := s.DB.First(&ctx.Schedule, "exam_schedule_id = ?", ctx.Slot.ExamSlotExamScheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Exam schedule for slot not found")
		}
		return nil, storeErr("load exam schedule", err)
	}
	var entry schedModel.CalendarEntryModel
	if err := s.DB.First(&entry, "calendar_entry_id = ?", ctx.Schedule.ExamScheduleCalendarEntryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Calendar entry for schedule not found")
		}
		return nil, storeErr("load calendar entry", err)
	}
	ctx.AcademicYear = entry.CalendarEntryAcademicYear
	return &ctx, nil
}

// resolveClassID resolves the permission scope from the student's enrollment.
// A caller-supplied class is accepted only when it matches that enrollment;
// the claimed class never widens the scope on its own.
func (s *ResultStore) resolveClassID(in UpsertResultInput) (uuid.UUID, error) {
	var student peopleModel.StudentModel
	if err := s.DB.First(&student, "student_id = ?", in.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return uuid.Nil, storeErr("load student", err)
	}
	enrolled := uuid.Nil
	if student.StudentClassID != nil {
		enrolled = *student.StudentClassID
	}
	return classScope(in.ClassID, enrolled)
}

// classScope accepts a claimed class only when it matches the student's
// enrollment.
func classScope(claimed, enrolled uuid.UUID) (uuid.UUID, error) {
	if claimed != uuid.Nil && claimed != enrolled {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Student is not enrolled in this class")
	}
	return enrolled, nil
}

// FindResult returns the result for the (slot, student) pair, or nil.
func (s *ResultStore) FindResult(slotID, studentID uuid.UUID) (*resultModel.ExamResultModel, error) {
	var m resultModel.ExamResultModel
	err := s.DB.First(&m,
		"exam_result_exam_slot_id = ? AND exam_result_student_id = ?", slotID, studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find result", err)
	}
	return &m, nil
}

/* =========================================================
   Create
   ========================================================= */

// Create records a first result for a (slot, student) pair. Fails when the
// pair already has a result; bulk callers go through Upsert instead.
func (s *ResultStore) Create(in UpsertResultInput, actor Actor) (*resultModel.ExamResultModel, error) {
	ctx, err := s.loadSlotContext(in.ExamSlotID)
	if err != nil {
		return nil, err
	}
	classID, err := s.resolveClassID(in)
	if err != nil {
		return nil, err
	}
	if classID != uuid.Nil && !ctx.Schedule.AppliesToClass(classID) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Exam schedule does not apply to the student's class")
	}

	decision, err := s.Perms.CanGrade(actor.Role, actor.UserID, ctx.Subject.SubjectID, classID)
	if err != nil {
		return nil, err
	}
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if err := validateMarks(in, ctx.Subject.SubjectMaxMarks); err != nil {
		return nil, err
	}

	m, err := s.buildResult(in, ctx, actor)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			// Unique (slot, student) constraint is the race resolution point:
			// the losing concurrent create lands here.
			return nil, fiber.NewError(fiber.StatusConflict,
				"A result for this exam slot and student already exists")
		}
		return nil, storeErr("create result", err)
	}
	return m, nil
}

func (s *ResultStore) buildResult(in UpsertResultInput, ctx *slotContext, actor Actor) (*resultModel.ExamResultModel, error) {
	now := time.Now()
	m := &resultModel.ExamResultModel{
		ExamResultExamSlotID: in.ExamSlotID,
		ExamResultStudentID:  in.StudentID,
		ExamResultRemarks:    in.Remarks,
		ExamResultIsAbsent:   in.IsAbsent,
		ExamResultStatus:     resultModel.ExamResultStatusDraft,
		ExamResultGradedBy:   actor.UserID,
		ExamResultGradedAt:   now,
	}
	if !in.IsAbsent {
		m.ExamResultMarksObtained = in.MarksObtained
	}

	if in.GradeDefinitionID != nil {
		def, err := s.gradeDefinitionByID(*in.GradeDefinitionID)
		if err != nil {
			return nil, err
		}
		m.ExamResultGradeDefinitionID = &def.GradeDefinitionID
		m.ExamResultGradeLabel = &def.GradeDefinitionLabel
		comp := ComputeGrade(m.ExamResultMarksObtained, in.IsAbsent,
			ctx.Subject.SubjectMaxMarks, ctx.Subject.SubjectPassMarks, nil)
		m.ExamResultIsPassed = comp.IsPassed
		return m, nil
	}

	scale, err := s.Scales.DefaultForYear(ctx.AcademicYear)
	if err != nil {
		return nil, err
	}
	comp := ComputeGrade(m.ExamResultMarksObtained, in.IsAbsent,
		ctx.Subject.SubjectMaxMarks, ctx.Subject.SubjectPassMarks, scale)
	m.ExamResultGradeDefinitionID = comp.GradeDefinitionID
	m.ExamResultGradeLabel = comp.GradeLabel
	m.ExamResultIsPassed = comp.IsPassed
	return m, nil
}

func (s *ResultStore) gradeDefinitionByID(id uuid.UUID) (*scaleModel.GradeDefinitionModel, error) {
	var def scaleModel.GradeDefinitionModel
	if err := s.DB.First(&def, "grade_definition_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Grade definition not found")
		}
		return nil, storeErr("load grade definition", err)
	}
	return &def, nil
}

/* =========================================================
   Update
   ========================================================= */

// Update amends an existing result. Requires the modify permission and a
// non-empty modification reason; only the fields that actually changed go
// into the appended history entry.
func (s *ResultStore) Update(resultID uuid.UUID, in UpsertResultInput, actor Actor) (*resultModel.ExamResultModel, error) {
	var m resultModel.ExamResultModel
	if err := s.DB.First(&m, "exam_result_id = ?", resultID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Exam result not found")
		}
		return nil, storeErr("load result", err)
	}

	in.ExamSlotID = m.ExamResultExamSlotID
	in.StudentID = m.ExamResultStudentID
	return s.applyUpdate(&m, in, actor)
}

func (s *ResultStore) applyUpdate(m *resultModel.ExamResultModel, in UpsertResultInput, actor Actor) (*resultModel.ExamResultModel, error) {
	ctx, err := s.loadSlotContext(m.ExamResultExamSlotID)
	if err != nil {
		return nil, err
	}
	classID, err := s.resolveClassID(in)
	if err != nil {
		return nil, err
	}

	decision, err := s.Perms.CanModify(actor.Role, actor.UserID, ctx.Subject.SubjectID, classID)
	if err != nil {
		return nil, err
	}
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if err := requireModificationReason(in.ModificationReason); err != nil {
		return nil, err
	}

	if err := validateMarks(in, ctx.Subject.SubjectMaxMarks); err != nil {
		return nil, err
	}

	// Next field values.
	newMarks := in.MarksObtained
	if in.IsAbsent {
		newMarks = nil
	}

	newGradeID := m.ExamResultGradeDefinitionID
	newGradeLabel := m.ExamResultGradeLabel
	newPassed := m.ExamResultIsPassed
	if gradeInputsChanged(m, newMarks, in) {
		if in.GradeDefinitionID != nil {
			def, err := s.gradeDefinitionByID(*in.GradeDefinitionID)
			if err != nil {
				return nil, err
			}
			newGradeID = &def.GradeDefinitionID
			newGradeLabel = &def.GradeDefinitionLabel
			comp := ComputeGrade(newMarks, in.IsAbsent,
				ctx.Subject.SubjectMaxMarks, ctx.Subject.SubjectPassMarks, nil)
			newPassed = comp.IsPassed
		} else {
			scale, err := s.Scales.DefaultForYear(ctx.AcademicYear)
			if err != nil {
				return nil, err
			}
			comp := ComputeGrade(newMarks, in.IsAbsent,
				ctx.Subject.SubjectMaxMarks, ctx.Subject.SubjectPassMarks, scale)
			newGradeID = comp.GradeDefinitionID
			newGradeLabel = comp.GradeLabel
			newPassed = comp.IsPassed
		}
	}

	// Diff only the fields that actually changed.
	changes := map[string]resultModel.FieldChange{}
	resultModel.DiffFloatPtr(changes, "marks_obtained", m.ExamResultMarksObtained, newMarks)
	resultModel.DiffBool(changes, "is_absent", m.ExamResultIsAbsent, in.IsAbsent)
	resultModel.DiffUUIDPtr(changes, "grade_definition_id", m.ExamResultGradeDefinitionID, newGradeID)
	resultModel.DiffStringPtr(changes, "remarks", m.ExamResultRemarks, in.Remarks)
	resultModel.DiffBool(changes, "is_passed", m.ExamResultIsPassed, newPassed)

	if len(changes) == 0 {
		// Nothing changed: no history entry, no write.
		return m, nil
	}

	now := time.Now()
	if err := m.AppendModification(resultModel.ModificationHistoryEntry{
		ModifiedAt: now,
		ModifiedBy: actor.UserID,
		Reason:     strings.TrimSpace(in.ModificationReason),
		Changes:    changes,
	}); err != nil {
		return nil, storeErr("append history", err)
	}

	m.ExamResultMarksObtained = newMarks
	m.ExamResultIsAbsent = in.IsAbsent
	m.ExamResultGradeDefinitionID = newGradeID
	m.ExamResultGradeLabel = newGradeLabel
	m.ExamResultRemarks = in.Remarks
	m.ExamResultIsPassed = newPassed
	m.ExamResultLastModifiedBy = &actor.UserID
	m.ExamResultLastModifiedAt = &now

	patch := map[string]any{
		"exam_result_marks_obtained":       m.ExamResultMarksObtained,
		"exam_result_is_absent":            m.ExamResultIsAbsent,
		"exam_result_grade_definition_id":  m.ExamResultGradeDefinitionID,
		"exam_result_grade_label":          m.ExamResultGradeLabel,
		"exam_result_remarks":              m.ExamResultRemarks,
		"exam_result_is_passed":            m.ExamResultIsPassed,
		"exam_result_last_modified_by":     m.ExamResultLastModifiedBy,
		"exam_result_last_modified_at":     m.ExamResultLastModifiedAt,
		"exam_result_modification_history": m.ExamResultModificationHistory,
		"exam_result_updated_at":           now,
	}
	if err := s.DB.Model(&resultModel.ExamResultModel{}).
		Where("exam_result_id = ?", m.ExamResultID).
		Updates(patch).Error; err != nil {
		return nil, storeErr("update result", err)
	}
	return m, nil
}

/* =========================================================
   Upsert
   ========================================================= */

// Upsert is the bulk path: create when no record exists for the pair,
// otherwise update, which then requires a modification reason. The returned
// bool reports whether a new record was created.
func (s *ResultStore) Upsert(in UpsertResultInput, actor Actor) (*resultModel.ExamResultModel, bool, error) {
	existing, err := s.FindResult(in.ExamSlotID, in.StudentID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		m, err := s.Create(in, actor)
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) && fe.Code == fiber.StatusConflict {
				// Lost the create race: redirect to the update path.
				if again, ferr := s.FindResult(in.ExamSlotID, in.StudentID); ferr == nil && again != nil {
					upd, uerr := s.applyUpdate(again, in, actor)
					return upd, false, uerr
				}
			}
			return nil, false, err
		}
		return m, true, nil
	}
	m, err := s.applyUpdate(existing, in, actor)
	return m, false, err
}

/* =========================================================
   Shared validation
   ========================================================= */

// gradeInputsChanged reports whether an update touches anything the grade is
// derived from. The stored grade stands as long as it returns false: a
// remarks-only update must not re-derive the grade from the current default
// scale and wipe an explicit override.
func gradeInputsChanged(m *resultModel.ExamResultModel, newMarks *float64, in UpsertResultInput) bool {
	scratch := map[string]resultModel.FieldChange{}
	if resultModel.DiffFloatPtr(scratch, "marks_obtained", m.ExamResultMarksObtained, newMarks) {
		return true
	}
	if m.ExamResultIsAbsent != in.IsAbsent {
		return true
	}
	return in.GradeDefinitionID != nil &&
		resultModel.DiffUUIDPtr(scratch, "grade_definition_id", m.ExamResultGradeDefinitionID, in.GradeDefinitionID)
}

// requireModificationReason gates every amendment of an existing result.
func requireModificationReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Modification reason is required")
	}
	return nil
}

func validateMarks(in UpsertResultInput, maxMarks float64) error {
	if in.IsAbsent {
		return nil
	}
	if in.MarksObtained == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Marks are required unless the student is absent")
	}
	if *in.MarksObtained < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Marks cannot be negative")
	}
	if *in.MarksObtained > maxMarks {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Marks %.2f exceed the subject maximum of %.2f", *in.MarksObtained, maxMarks))
	}
	return nil
}

func storeErr(step string, err error) error {
	log.Printf("[ResultStore] ERROR %s: %v", step, err)
	return fiber.NewError(fiber.StatusInternalServerError, "Exam result storage failure")
}
