// file: internals/features/school/academics/people/model/student_model_test.go
package model

import "testing"

func TestStudentBeforeSaveTrims(t *testing.T) {
	m := &StudentModel{StudentName: "  Sari Putri  ", StudentRollNo: " 12 "}
	if err := m.BeforeSave(nil); err != nil {
		t.Fatalf("before save: %v", err)
	}
	if m.StudentName != "Sari Putri" {
		t.Errorf("name = %q, want trimmed", m.StudentName)
	}
	if m.StudentRollNo != "12" {
		t.Errorf("roll no = %q, want trimmed", m.StudentRollNo)
	}
}
