package model

// AllModels lists every classroom table in dependency order for AutoMigrate.
func AllModels() []any {
	return []any{
		&StudentModel{},
		&TeacherModel{},
		&StudentMarkModel{},
		&StudentInClassModel{},
		&MessageToTeacherModel{},
		&ClassNoticeModel{},
		&ClassNoticeStudentModel{},
		&ClassAssignmentModel{},
		&ClassAssignmentStudentModel{},
		&SubmitAssignmentModel{},
	}
}
