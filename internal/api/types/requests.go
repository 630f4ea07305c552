package types

// CreateStudentRequest is the body of POST /api/students.
type CreateStudentRequest struct {
	StudentNumber string  `json:"student_number" validate:"required,max=32"`
	FirstName     string  `json:"first_name" validate:"required,max=128"`
	LastName      string  `json:"last_name" validate:"required,max=128"`
	Email         string  `json:"email" validate:"omitempty,email"`
	Program       string  `json:"program" validate:"max=128"`
	Year          int     `json:"year" validate:"required,gte=1,lte=8"`
	AdvisorID     *string `json:"advisor_id" validate:"omitempty,uuid"`
}

// UpdateStudentRequest is the body of PUT /api/students/{id}. Absent fields
// are left unchanged.
type UpdateStudentRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=128"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=128"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Program   *string `json:"program" validate:"omitempty,max=128"`
	Year      *int    `json:"year" validate:"omitempty,gte=1,lte=8"`
	AdvisorID *string `json:"advisor_id" validate:"omitempty,uuid"`
}

// CreateInteractionRequest is the body of POST /api/interactions.
type CreateInteractionRequest struct {
	StudentID  string  `json:"student_id" validate:"required,uuid"`
	StaffID    *string `json:"staff_id" validate:"omitempty,uuid"`
	Type       string  `json:"type" validate:"required,interaction_type"`
	Summary    string  `json:"summary" validate:"required,max=4000"`
	OccurredAt *string `json:"occurred_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}
