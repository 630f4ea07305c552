package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/advising-studio/engine/internal/models"
	"github.com/advising-studio/engine/internal/repository"
	appErr "github.com/advising-studio/engine/pkg/errors"
)

func TestListStudentsNormalizesPaging(t *testing.T) {
	students := new(mockStudentRepository)
	svc := NewStudentService(students, new(mockStaffRepository))
	ctx := context.Background()

	students.On("Search", ctx, repository.StudentFilter{Query: "ada", Limit: DefaultPageSize, Offset: 0}).
		Return(nil, int64(0), nil).Once()
	page, err := svc.ListStudents(ctx, &StudentFilters{Query: "ada", Page: -3, PageSize: 5000})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Page)

	students.On("Search", ctx, repository.StudentFilter{Limit: 10, Offset: 20}).
		Return([]models.Student{{LastName: "Turing"}}, int64(21), nil).Once()
	page, err = svc.ListStudents(ctx, &StudentFilters{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.EqualValues(t, 21, page.Total)

	students.AssertExpectations(t)
}

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("trims input and defaults year", func(t *testing.T) {
		students := new(mockStudentRepository)
		svc := NewStudentService(students, new(mockStaffRepository))
		students.On("Create", ctx, mock.MatchedBy(func(s *models.Student) bool {
			return s.StudentNumber == "S-1" && s.FirstName == "Grace" && s.Year == 1
		})).Return(nil)

		st, err := svc.CreateStudent(ctx, &CreateStudentInput{StudentNumber: " S-1 ", FirstName: "Grace ", LastName: "Hopper"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, st.ID)
	})

	t.Run("unknown advisor is a caller error", func(t *testing.T) {
		staff := new(mockStaffRepository)
		svc := NewStudentService(new(mockStudentRepository), staff)
		advisor := uuid.New()
		staff.On("GetByID", ctx, advisor, mock.Anything).Return(appErr.New(appErr.CodeNotFound, "staff member not found"), nil)

		_, err := svc.CreateStudent(ctx, &CreateStudentInput{StudentNumber: "S-2", FirstName: "A", LastName: "B", AdvisorID: &advisor})
		assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		students := new(mockStudentRepository)
		svc := NewStudentService(students, new(mockStaffRepository))
		students.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

		_, err := svc.CreateStudent(ctx, &CreateStudentInput{StudentNumber: "S-3", FirstName: "A", LastName: "B"})
		assert.EqualError(t, err, "connection refused")
	})
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	existing := &models.Student{ID: id, StudentNumber: "S-1", FirstName: "Grace", LastName: "Hopper", Year: 1}

	students := new(mockStudentRepository)
	svc := NewStudentService(students, new(mockStaffRepository))
	students.On("GetByID", ctx, id, mock.Anything).Return(nil, existing)
	students.On("Update", ctx, mock.MatchedBy(func(s *models.Student) bool {
		return s.Year == 3 && s.Program == "Mathematics" && s.FirstName == "Grace"
	})).Return(nil)

	year, program := 3, "Mathematics"
	st, err := svc.UpdateStudent(ctx, id, &UpdateStudentInput{Year: &year, Program: &program})
	require.NoError(t, err)
	assert.Equal(t, 3, st.Year)

	blank := "  "
	_, err = svc.UpdateStudent(ctx, id, &UpdateStudentInput{LastName: &blank})
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestDeleteStudentPropagatesNotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	students := new(mockStudentRepository)
	students.On("Delete", ctx, id).Return(appErr.New(appErr.CodeNotFound, "student not found"))

	err := NewStudentService(students, new(mockStaffRepository)).DeleteStudent(ctx, id)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}
