package rbac

import (
	"context"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const (
	ResourceTimesheet = "timesheet"
	ActionApproveAny  = "approve_any"
)

// SupervisorLookup reports whether supervisorID supervises one of the
// employee's active assignments.
type SupervisorLookup interface {
	IsSupervisorOf(ctx context.Context, universityID, supervisorID, employeeID string) (bool, error)
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadUniversityPolicy(ctx context.Context, universityID string) error
	Enforce(req EnforceRequest) (bool, error)
	CanApproveTimesheet(ctx context.Context, universityID, approverID, employeeID string) (bool, error)
}

type service struct {
	repo        Repository
	enforcer    *casbin.Enforcer
	supervisors SupervisorLookup
	logger      *zap.Logger
	mu          sync.Mutex
}

func NewService(repo Repository, enforcer *casbin.Enforcer, supervisors SupervisorLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:        repo,
		enforcer:    enforcer,
		supervisors: supervisors,
		logger:      l,
	}
}

func (s *service) LoadUniversityPolicy(ctx context.Context, universityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadPolicyUnlocked(ctx, universityID)
}

// The enforcer holds one university's policy at a time, so every check
// reloads under the mutex.
func (s *service) loadPolicyUnlocked(ctx context.Context, universityID string) error {
	s.enforcer.ClearPolicy()

	employeeRoles, err := s.repo.GetEmployeeRoles(ctx, universityID)
	if err != nil {
		return err
	}
	for _, er := range employeeRoles {
		if _, err := s.enforcer.AddGroupingPolicy(er.EmployeeID, er.RoleID, universityID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(ctx, universityID)
	if err != nil {
		return err
	}
	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, universityID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded",
		zap.String("university_id", universityID),
		zap.Int("employee_roles", len(employeeRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	return s.enforce(context.Background(), req)
}

func (s *service) enforce(ctx context.Context, req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadPolicyUnlocked(ctx, req.UniversityID); err != nil {
		s.logger.Error("rbac load policy failed", zap.String("university_id", req.UniversityID), zap.Error(err))
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.EmployeeID, req.UniversityID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("university_id", req.UniversityID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("employee_id", req.EmployeeID),
		zap.String("university_id", req.UniversityID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
		zap.Strings("roles", s.enforcer.GetRolesForUserInDomain(req.EmployeeID, req.UniversityID)),
	)
	return allowed, nil
}

// CanApproveTimesheet grants review rights to holders of timesheet:approve_any
// and to the employee's assignment supervisor.
func (s *service) CanApproveTimesheet(ctx context.Context, universityID, approverID, employeeID string) (bool, error) {
	allowed, err := s.enforce(ctx, EnforceRequest{
		EmployeeID:   approverID,
		UniversityID: universityID,
		Resource:     ResourceTimesheet,
		Action:       ActionApproveAny,
	})
	if err != nil {
		return false, err
	}
	if allowed {
		return true, nil
	}
	if s.supervisors == nil {
		return false, nil
	}
	return s.supervisors.IsSupervisorOf(ctx, universityID, approverID, employeeID)
}
