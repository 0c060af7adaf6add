package employee

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	employeeerrors "uni-payroll/internal/employee/errors"
	"uni-payroll/internal/shared/contextutil"
	"uni-payroll/internal/shared/counter"
	"uni-payroll/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, universityID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, universityID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, universityID, id string) (EmployeeResponse, error)
	UpdateStatus(ctx context.Context, universityID, id string, req UpdateStatusRequest) (EmployeeResponse, error)

	CreateAssignment(ctx context.Context, universityID, employeeID string, req CreateAssignmentRequest) (AssignmentResponse, error)
	ApproveAssignment(ctx context.Context, universityID, id string) (AssignmentResponse, error)
	GetAssignments(ctx context.Context, universityID, employeeID string) ([]AssignmentResponse, error)

	// Directory lookups used by the time ledger and the approver.
	GetEmployee(ctx context.Context, universityID, id string) (*Employee, error)
	ResolveAssignment(ctx context.Context, universityID, employeeID, assignmentID string, start, end time.Time) (*Assignment, error)
	IsSupervisorOf(ctx context.Context, universityID, supervisorID, employeeID string) (bool, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	universityID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("university_id", universityID),
		zap.String("email", req.Email),
	)

	universityUUID, err := uuid.Parse(universityID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidUniversityID
	}
	hireDate, err := time.Parse(dateLayout, req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	if req.EmployeeNumber == "" {
		nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, universityID, counter.TypeEmployeeNumber)
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	empl := &Employee{
		ID:             uuid.New(),
		UniversityID:   universityUUID,
		DepartmentID:   uuidPtr(req.DepartmentID),
		FullName:       req.FullName,
		Email:          req.Email,
		EmployeeNumber: req.EmployeeNumber,
		Status:         StatusActive,
		HireDate:       hireDate,
	}

	if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, universityID string) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("university_id", universityID))
	empls, err := s.repo.FindAllByUniversity(ctx, universityID)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, universityID, id string) (EmployeeResponse, error) {
	empl, err := s.GetEmployee(ctx, universityID, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*empl), nil
}

func (s *service) GetEmployee(ctx context.Context, universityID, id string) (*Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := s.repo.FindByIDAndUniversity(ctx, universityID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return empl, nil
}

// UpdateStatus moves an employee between active and on_leave, or terminates
// them. Employees are never deleted; terminated is final.
func (s *service) UpdateStatus(
	ctx context.Context,
	universityID, id string,
	req UpdateStatusRequest,
) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update employee status begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByIDAndUniversity(ctx, universityID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if empl.Status == StatusTerminated && req.Status != StatusTerminated {
		log.Warn("update employee status rejected",
			zap.String("employee_id", id),
			zap.String("from", empl.Status),
			zap.String("to", req.Status),
		)
		return EmployeeResponse{}, employeeerrors.ErrTerminated
	}

	if err := qtx.UpdateStatus(ctx, universityID, id, req.Status); err != nil {
		log.Error("update employee status persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	log.Info("update employee status success",
		zap.String("employee_id", id),
		zap.String("status", req.Status),
	)
	empl.Status = req.Status
	return mapToResponse(*empl), nil
}

func (s *service) CreateAssignment(
	ctx context.Context,
	universityID, employeeID string,
	req CreateAssignmentRequest,
) (AssignmentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	universityUUID, err := uuid.Parse(universityID)
	if err != nil {
		return AssignmentResponse{}, employeeerrors.ErrInvalidUniversityID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AssignmentResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	a, err := buildAssignment(req)
	if err != nil {
		log.Warn("create assignment validation failed", zap.Error(err))
		return AssignmentResponse{}, err
	}
	a.ID = uuid.New()
	a.UniversityID = universityUUID
	a.EmployeeID = employeeUUID

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create assignment begin tx failed", zap.Error(err))
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByIDAndUniversity(ctx, universityID, employeeID)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}
	if empl.Status == StatusTerminated {
		return AssignmentResponse{}, employeeerrors.ErrEmployeeNotActive
	}

	if a.PositionID != nil {
		ok, err := qtx.PositionExists(ctx, universityID, a.PositionID.String())
		if err != nil {
			return AssignmentResponse{}, err
		}
		if !ok {
			return AssignmentResponse{}, employeeerrors.ErrPositionNotFound
		}
	}

	if err := qtx.CreateAssignment(ctx, a); err != nil {
		log.Error("create assignment persist failed", zap.Error(err))
		return AssignmentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	log.Info("create assignment success",
		zap.String("employee_id", employeeID),
		zap.String("assignment_id", a.ID.String()),
	)
	return mapAssignment(*a), nil
}

func (s *service) ApproveAssignment(ctx context.Context, universityID, id string) (AssignmentResponse, error) {
	n, err := s.repo.ApproveAssignment(ctx, universityID, id)
	if err != nil {
		s.logger.Error("approve assignment failed", zap.String("assignment_id", id), zap.Error(err))
		return AssignmentResponse{}, err
	}
	if n == 0 {
		return AssignmentResponse{}, employeeerrors.ErrAssignmentNotFound
	}

	a, err := s.repo.FindAssignmentByID(ctx, universityID, id)
	if err != nil {
		return AssignmentResponse{}, mapAssignmentError(err)
	}
	return mapAssignment(*a), nil
}

func (s *service) GetAssignments(ctx context.Context, universityID, employeeID string) ([]AssignmentResponse, error) {
	list, err := s.repo.FindAssignmentsByEmployee(ctx, universityID, employeeID)
	if err != nil {
		s.logger.Error("get assignments failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	res := make([]AssignmentResponse, len(list))
	for i, a := range list {
		res[i] = mapAssignment(a)
	}
	return res, nil
}

// ResolveAssignment picks the assignment a timesheet for [start, end] is
// paid against. An explicit assignmentID must be active, approved and cover
// the period; otherwise exactly one such assignment must exist.
func (s *service) ResolveAssignment(
	ctx context.Context,
	universityID, employeeID, assignmentID string,
	start, end time.Time,
) (*Assignment, error) {
	if assignmentID != "" {
		a, err := s.repo.FindAssignmentByID(ctx, universityID, assignmentID)
		if err != nil {
			return nil, mapAssignmentError(err)
		}
		if a.EmployeeID.String() != employeeID || !a.IsActive || !a.IsApproved || !a.Covers(start, end) {
			return nil, employeeerrors.ErrAssignmentNotUsable
		}
		return a, nil
	}

	list, err := s.repo.FindCoveringAssignments(ctx, universityID, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	switch len(list) {
	case 0:
		return nil, employeeerrors.ErrNoAssignmentForPeriod
	case 1:
		return &list[0], nil
	default:
		ids := make([]string, len(list))
		for i, a := range list {
			ids[i] = a.ID.String()
		}
		s.logger.Warn("ambiguous assignment for period",
			zap.String("employee_id", employeeID),
			zap.Strings("assignment_ids", ids),
		)
		return nil, employeeerrors.ErrAmbiguousAssignment.WithDetails(map[string]any{"assignment_ids": ids})
	}
}

func (s *service) IsSupervisorOf(ctx context.Context, universityID, supervisorID, employeeID string) (bool, error) {
	return s.repo.IsSupervisorOf(ctx, universityID, supervisorID, employeeID)
}

func buildAssignment(req CreateAssignmentRequest) (*Assignment, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDate
	}
	var end *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		t, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, employeeerrors.ErrInvalidDate
		}
		if t.Before(start) {
			return nil, employeeerrors.ErrInvalidDateRange
		}
		end = &t
	}

	amounts := make([]*decimal.Decimal, 5)
	for i, raw := range []*string{req.HourlyRate, req.SalaryAmount, req.StipendAmount, req.MaxHoursPerWeek, req.MaxHoursPerPeriod} {
		d, err := money.ParseOptional(raw)
		if err != nil || (d != nil && d.IsNegative()) {
			return nil, employeeerrors.ErrInvalidAmount
		}
		amounts[i] = d
	}

	return &Assignment{
		PositionID:        uuidPtr(req.PositionID),
		SupervisorID:      uuidPtr(req.SupervisorID),
		Title:             req.Title,
		PayRateType:       req.PayRateType,
		HourlyRate:        amounts[0],
		SalaryAmount:      amounts[1],
		StipendAmount:     amounts[2],
		StipendFrequency:  req.StipendFrequency,
		MaxHoursPerWeek:   amounts[3],
		MaxHoursPerPeriod: amounts[4],
		HoursCapIsHard:    req.HoursCapIsHard,
		StartDate:         start,
		EndDate:           end,
		IsActive:          true,
	}, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             empl.ID.String(),
		UniversityID:   empl.UniversityID.String(),
		DepartmentID:   uuidToString(empl.DepartmentID),
		FullName:       empl.FullName,
		Email:          empl.Email,
		EmployeeNumber: empl.EmployeeNumber,
		Status:         empl.Status,
		HireDate:       empl.HireDate.Format(dateLayout),
	}
}

func mapAssignment(a Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:                a.ID.String(),
		EmployeeID:        a.EmployeeID.String(),
		PositionID:        uuidToString(a.PositionID),
		SupervisorID:      uuidToString(a.SupervisorID),
		Title:             a.Title,
		PayRateType:       a.PayRateType,
		HourlyRate:        rateString(a.HourlyRate),
		SalaryAmount:      money.StringPtr(a.SalaryAmount),
		StipendAmount:     money.StringPtr(a.StipendAmount),
		StipendFrequency:  a.StipendFrequency,
		MaxHoursPerWeek:   money.StringPtr(a.MaxHoursPerWeek),
		MaxHoursPerPeriod: money.StringPtr(a.MaxHoursPerPeriod),
		HoursCapIsHard:    a.HoursCapIsHard,
		StartDate:         a.StartDate.Format(dateLayout),
		IsActive:          a.IsActive,
		IsApproved:        a.IsApproved,
	}
	if a.Position != nil {
		resp.PositionName = a.Position.Name
		if resp.PayRateType == "" {
			resp.PayRateType = a.Position.DefaultPayRateType
		}
	}
	if a.EndDate != nil {
		end := a.EndDate.Format(dateLayout)
		resp.EndDate = &end
	}
	return resp
}

func rateString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	v := d.String()
	return &v
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
