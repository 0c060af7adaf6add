package employee_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"uni-payroll/internal/employee"
	employeeerrors "uni-payroll/internal/employee/errors"
	"uni-payroll/internal/paycalc"
	"uni-payroll/internal/shared/apperror"
	"uni-payroll/internal/shared/counter"

	employeeMock "uni-payroll/internal/employee/mock"
	counterMock "uni-payroll/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *employeeMock.MockRepository
	counter *counterMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)

	svc := employee.NewService(db, repo, counterRepo)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		counter: counterRepo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	universityID := uuid.New().String()

	t.Run("success - auto generate employee number", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), universityID, counter.TypeEmployeeNumber).Return(int64(7), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Create(ctx, universityID, employee.CreateEmployeeRequest{
			FullName: "Ada Lovelace",
			Email:    "ada@uni.edu",
			HireDate: "2024-01-15",
		})

		require.NoError(t, err)
		assert.Equal(t, "EMP-000007", resp.EmployeeNumber)
		assert.Equal(t, employee.StatusActive, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"})

		_, err := deps.service.Create(ctx, universityID, employee.CreateEmployeeRequest{
			FullName:       "Ada Lovelace",
			Email:          "ada@uni.edu",
			EmployeeNumber: "EMP-1",
			HireDate:       "2024-01-15",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})

	t.Run("invalid hire date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, universityID, employee.CreateEmployeeRequest{
			FullName: "Ada",
			Email:    "ada@uni.edu",
			HireDate: "15-01-2024",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDate)
	})
}

func TestEmployeeService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	universityID := uuid.New().String()
	id := uuid.New()

	t.Run("terminated is final", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndUniversity(gomock.Any(), universityID, id.String()).
			Return(&employee.Employee{ID: id, Status: employee.StatusTerminated}, nil)

		_, err := deps.service.UpdateStatus(ctx, universityID, id.String(), employee.UpdateStatusRequest{Status: employee.StatusActive})

		assert.ErrorIs(t, err, employeeerrors.ErrTerminated)
	})

	t.Run("active to on_leave", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndUniversity(gomock.Any(), universityID, id.String()).
			Return(&employee.Employee{ID: id, Status: employee.StatusActive}, nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), universityID, id.String(), employee.StatusOnLeave).Return(nil)

		resp, err := deps.service.UpdateStatus(ctx, universityID, id.String(), employee.UpdateStatusRequest{Status: employee.StatusOnLeave})

		require.NoError(t, err)
		assert.Equal(t, employee.StatusOnLeave, resp.Status)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndUniversity(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateStatus(ctx, universityID, id.String(), employee.UpdateStatusRequest{Status: employee.StatusOnLeave})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_ResolveAssignment(t *testing.T) {
	ctx := context.Background()
	universityID := uuid.New().String()
	employeeID := uuid.New()
	start, end := date("2024-03-01"), date("2024-03-15")

	covering := func() employee.Assignment {
		return employee.Assignment{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			StartDate:  date("2024-01-01"),
			IsActive:   true,
			IsApproved: true,
		}
	}

	t.Run("single match", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		a := covering()
		deps.repo.EXPECT().FindCoveringAssignments(gomock.Any(), universityID, employeeID.String(), start, end).
			Return([]employee.Assignment{a}, nil)

		got, err := deps.service.ResolveAssignment(ctx, universityID, employeeID.String(), "", start, end)

		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)
	})

	t.Run("no match", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindCoveringAssignments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := deps.service.ResolveAssignment(ctx, universityID, employeeID.String(), "", start, end)

		assert.ErrorIs(t, err, employeeerrors.ErrNoAssignmentForPeriod)
	})

	t.Run("ambiguous match is an error, never an implicit pick", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindCoveringAssignments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]employee.Assignment{covering(), covering()}, nil)

		_, err := deps.service.ResolveAssignment(ctx, universityID, employeeID.String(), "", start, end)

		assert.ErrorIs(t, err, employeeerrors.ErrAmbiguousAssignment)
		assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
		assert.NotNil(t, apperror.ToHTTP(err).Details)
	})

	t.Run("explicit assignment ending mid period", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		a := covering()
		endDate := date("2024-03-10")
		a.EndDate = &endDate
		deps.repo.EXPECT().FindAssignmentByID(gomock.Any(), universityID, a.ID.String()).Return(&a, nil)

		_, err := deps.service.ResolveAssignment(ctx, universityID, employeeID.String(), a.ID.String(), start, end)

		assert.ErrorIs(t, err, employeeerrors.ErrAssignmentNotUsable)
	})

	t.Run("explicit assignment of another employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		a := covering()
		a.EmployeeID = uuid.New()
		deps.repo.EXPECT().FindAssignmentByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(&a, nil)

		_, err := deps.service.ResolveAssignment(ctx, universityID, employeeID.String(), a.ID.String(), start, end)

		assert.ErrorIs(t, err, employeeerrors.ErrAssignmentNotUsable)
	})
}

func TestEmployeeService_CreateAssignment(t *testing.T) {
	ctx := context.Background()
	universityID := uuid.New().String()
	employeeID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rate := "20.5"
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndUniversity(gomock.Any(), universityID, employeeID.String()).
			Return(&employee.Employee{ID: employeeID, Status: employee.StatusActive}, nil)
		deps.repo.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *employee.Assignment) error {
				assert.True(t, a.IsActive)
				assert.False(t, a.IsApproved)
				assert.True(t, a.HourlyRate.Equal(decimal.RequireFromString("20.5")))
				return nil
			})

		resp, err := deps.service.CreateAssignment(ctx, universityID, employeeID.String(), employee.CreateAssignmentRequest{
			Title:       "Lab assistant",
			PayRateType: "hourly",
			HourlyRate:  &rate,
			StartDate:   "2024-01-01",
		})

		require.NoError(t, err)
		assert.Equal(t, "20.5", *resp.HourlyRate)
	})

	t.Run("negative rate", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rate := "-1"
		_, err := deps.service.CreateAssignment(ctx, universityID, employeeID.String(), employee.CreateAssignmentRequest{
			Title:      "Lab assistant",
			HourlyRate: &rate,
			StartDate:  "2024-01-01",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidAmount)
	})

	t.Run("terminated employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndUniversity(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&employee.Employee{ID: employeeID, Status: employee.StatusTerminated}, nil)

		_, err := deps.service.CreateAssignment(ctx, universityID, employeeID.String(), employee.CreateAssignmentRequest{
			Title:     "Lab assistant",
			StartDate: "2024-01-01",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotActive)
	})
}

func TestAssignment_ToPaycalcFallsBackToPosition(t *testing.T) {
	a := employee.Assignment{
		ID:         uuid.New(),
		HourlyRate: nil,
		StartDate:  date("2024-01-01"),
		Position: &employee.PositionDefaults{
			DefaultPayRateType: "hourly",
			DefaultHourlyRate:  dec("18.00"),
			MaxHoursPerWeek:    dec("20"),
		},
	}

	got := a.ToPaycalc()

	assert.Equal(t, paycalc.RateHourly, got.PayRateType)
	assert.True(t, got.HourlyRate.Equal(decimal.NewFromInt(18)))
	assert.True(t, a.WeeklyCap().Equal(decimal.NewFromInt(20)))

	own := dec("25")
	a.HourlyRate = own
	assert.True(t, a.ToPaycalc().HourlyRate.Equal(*own))
}
