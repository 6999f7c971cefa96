package employee_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"hr-ops/internal/employee"
	employeeerrors "hr-ops/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	CreateFn   func(ctx context.Context, empl *employee.Employee) error
	FindByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
	FindAllFn  func(ctx context.Context) ([]employee.Employee, error)
	UpdateFn   func(ctx context.Context, empl *employee.Employee) error
	CountFn    func(ctx context.Context) (int64, error)
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, empl *employee.Employee) error {
	return f.CreateFn(ctx, empl)
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, empl *employee.Employee) error {
	return f.UpdateFn(ctx, empl)
}
func (f *fakeEmployeeRepo) Count(ctx context.Context) (int64, error) {
	return f.CountFn(ctx)
}

var employeeNumberPattern = regexp.MustCompile(`^EMP\d{4}$`)

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - generates EMP number", func(t *testing.T) {
		var created *employee.Employee
		repo := &fakeEmployeeRepo{
			CreateFn: func(ctx context.Context, empl *employee.Employee) error {
				created = empl
				return nil
			},
		}
		svc := employee.NewService(repo)

		resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{Name: "Ada Lovelace"})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, "Ada Lovelace", resp.Name)
		assert.Regexp(t, employeeNumberPattern, resp.EmployeeNumber)
		assert.Zero(t, resp.HoursWorked)
		assert.Equal(t, created.ID.String(), resp.ID)
	})

	t.Run("regenerates number on collision", func(t *testing.T) {
		attempts := 0
		repo := &fakeEmployeeRepo{
			CreateFn: func(ctx context.Context, empl *employee.Employee) error {
				attempts++
				if attempts == 1 {
					return gorm.ErrDuplicatedKey
				}
				return nil
			},
		}
		svc := employee.NewService(repo)

		resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{Name: "Grace Hopper"})

		assert.NoError(t, err)
		assert.Equal(t, 2, attempts)
		assert.Regexp(t, employeeNumberPattern, resp.EmployeeNumber)
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		attempts := 0
		repo := &fakeEmployeeRepo{
			CreateFn: func(ctx context.Context, empl *employee.Employee) error {
				attempts++
				return gorm.ErrDuplicatedKey
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{Name: "Grace Hopper"})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNumberExhausted)
		assert.Equal(t, 5, attempts)
	})

	t.Run("unrelated persist error surfaces", func(t *testing.T) {
		repo := &fakeEmployeeRepo{
			CreateFn: func(ctx context.Context, empl *employee.Employee) error {
				return errors.New("connection refused")
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{Name: "Ada"})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, employeeerrors.ErrEmployeeNumberExhausted)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		svc := employee.NewService(&fakeEmployeeRepo{})

		_, err := svc.GetByID(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeEmployeeRepo{
			FindByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.GetByID(ctx, uuid.NewString())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeEmployeeRepo{
			FindByIDFn: func(ctx context.Context, got string) (*employee.Employee, error) {
				assert.Equal(t, id.String(), got)
				return &employee.Employee{
					ID:             id,
					Name:           "Ada",
					EmployeeNumber: "EMP1234",
					HoursWorked:    7.5,
				}, nil
			},
		}
		svc := employee.NewService(repo)

		resp, err := svc.GetByID(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, "EMP1234", resp.EmployeeNumber)
		assert.InDelta(t, 7.5, resp.HoursWorked, 1e-9)
	})
}

func TestEmployeeService_LogTime(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	newRepo := func(initialHours float64, saved **employee.Employee) *fakeEmployeeRepo {
		return &fakeEmployeeRepo{
			FindByIDFn: func(ctx context.Context, got string) (*employee.Employee, error) {
				return &employee.Employee{
					ID:             id,
					Name:           "Ada",
					EmployeeNumber: "EMP1234",
					HoursWorked:    initialHours,
				}, nil
			},
			UpdateFn: func(ctx context.Context, empl *employee.Employee) error {
				*saved = empl
				return nil
			},
		}
	}

	t.Run("adds elapsed hours cumulatively", func(t *testing.T) {
		var saved *employee.Employee
		svc := employee.NewService(newRepo(10, &saved))

		resp, err := svc.LogTime(ctx, id.String(), employee.LogTimeRequest{
			StartTime: "2026-08-03 09:00:00",
			EndTime:   "2026-08-03 17:30:00",
		})

		assert.NoError(t, err)
		assert.InDelta(t, 18.5, resp.HoursWorked, 1e-9)
		assert.NotNil(t, saved)
		assert.InDelta(t, 18.5, saved.HoursWorked, 1e-9)
	})

	t.Run("negative interval applied as-is", func(t *testing.T) {
		var saved *employee.Employee
		svc := employee.NewService(newRepo(10, &saved))

		resp, err := svc.LogTime(ctx, id.String(), employee.LogTimeRequest{
			StartTime: "2026-08-03 17:00:00",
			EndTime:   "2026-08-03 15:00:00",
		})

		assert.NoError(t, err)
		assert.InDelta(t, 8, resp.HoursWorked, 1e-9)
	})

	t.Run("rejects bad start time", func(t *testing.T) {
		svc := employee.NewService(&fakeEmployeeRepo{})

		_, err := svc.LogTime(ctx, id.String(), employee.LogTimeRequest{
			StartTime: "03-08-2026 09:00",
			EndTime:   "2026-08-03 17:00:00",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidTimeFormat)
	})

	t.Run("rejects bad end time", func(t *testing.T) {
		svc := employee.NewService(&fakeEmployeeRepo{})

		_, err := svc.LogTime(ctx, id.String(), employee.LogTimeRequest{
			StartTime: "2026-08-03 09:00:00",
			EndTime:   "tomorrow",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidTimeFormat)
	})

	t.Run("unknown employee", func(t *testing.T) {
		repo := &fakeEmployeeRepo{
			FindByIDFn: func(ctx context.Context, got string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.LogTime(ctx, id.String(), employee.LogTimeRequest{
			StartTime: "2026-08-03 09:00:00",
			EndTime:   "2026-08-03 17:00:00",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
