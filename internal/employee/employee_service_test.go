package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"employee-service/internal/employee"
	employeeerrors "employee-service/internal/employee/errors"
	employeeMock "employee-service/internal/employee/mock"
	"employee-service/internal/events"
	"employee-service/internal/messaging/kafka"
	kafkaMock "employee-service/internal/messaging/kafka/mock"
	"employee-service/internal/shared/apperror"
	"employee-service/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *employeeMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { _ = db.Close() })
	repo := employeeMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, employee.NewModelAssembler(""), outboxRepo)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		outbox:  outboxRepo,
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

// expectOutbox asserts one lifecycle event of eventType for employeeID.
func expectOutbox(t *testing.T, deps *serviceDeps, eventType string, employeeID string) {
	t.Helper()
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, eventType, e.EventType)
			assert.Equal(t, employeeID, e.AggregateID)
			assert.Equal(t, events.EmployeeLifecycleTopic, e.Topic)
			assert.Equal(t, kafka.OutboxStatusPending, e.Status)
			return nil
		})
}

func TestEmployeeService_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindAll(ctx).
			Return([]employee.Employee{{ID: 1, Name: "Alice", Role: "Developer", Email: "alice@example.com"}}, nil)

		resp, err := deps.service.FindAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp.Content, 1)
		assert.Equal(t, "Alice", resp.Content[0].Name)
		assert.Equal(t, "/employees/1", resp.Content[0].Links.Self())
		assert.Equal(t, "/employees", resp.Links.Self())
	})

	t.Run("empty store yields empty collection", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindAll(ctx).Return(nil, nil)

		resp, err := deps.service.FindAll(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, resp.Content)
		assert.Empty(t, resp.Content)
	})

	t.Run("repo error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db error"))

		_, err := deps.service.FindAll(ctx)

		assert.EqualError(t, err, "db error")
	})
}

func TestEmployeeService_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindByID(ctx, int64(5)).
			Return(&employee.Employee{ID: 5, Name: "John", Role: "Tester", Email: "john@example.com"}, nil)

		resp, err := deps.service.FindByID(ctx, 5)

		assert.NoError(t, err)
		assert.Equal(t, employee.EmployeeDTO{Name: "John", Role: "Tester", Email: "john@example.com"}, resp.EmployeeDTO)
		assert.Equal(t, "/employees/5", resp.Links.Self())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, int64(100)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.FindByID(ctx, 100)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("connection failure maps to service unavailable", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindByID(ctx, int64(7)).
			Return(nil, &pgconn.PgError{Code: "08006", Message: "connection failure"})

		_, err := deps.service.FindByID(ctx, 7)

		assert.Equal(t, http.StatusServiceUnavailable, apperror.ToHTTP(err).Status)
	})
}

func TestEmployeeService_FindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindByEmail(ctx, "lina@example.com").
			Return(&employee.Employee{ID: 20, Name: "Lina", Role: "Engineer", Email: "lina@example.com"}, nil)

		resp, err := deps.service.FindByEmail(ctx, "lina@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "Lina", resp.Name)
		assert.Equal(t, "/employees/20", resp.Links.Self())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByEmail(ctx, "x@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.FindByEmail(ctx, "x@example.com")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_NewEmployee(t *testing.T) {
	dto := employee.EmployeeDTO{Name: "Bob", Role: "Manager", Email: "bob@example.com"}

	t.Run("success returns 201 with self link of assigned id", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := contextutil.WithRequestID(context.Background(), "REQ-123")

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
				assert.Zero(t, e.ID)
				assert.Equal(t, "Bob", e.Name)
				e.ID = 10
				return e, nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, "REQ-123", e.RequestID)
				assert.Equal(t, "10", e.AggregateID)

				var payload events.EmployeeLifecycleEvent
				assert.NoError(t, json.Unmarshal(e.Payload, &payload))
				assert.Equal(t, events.EmployeeCreated, payload.EventType)
				assert.Equal(t, int64(10), payload.EmployeeID)
				assert.Equal(t, "REQ-123", payload.RequestID)
				return nil
			})

		res, err := deps.service.NewEmployee(ctx, dto)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Equal(t, "/employees/10", res.Location)
		assert.Equal(t, "Bob", res.Model.Name)
		assert.Equal(t, "/employees/10", res.Model.Links.Self())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("repo error rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Save(ctx, gomock.Any()).Return(nil, errors.New("db error"))

		_, err := deps.service.NewEmployee(ctx, dto)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox error rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Save(ctx, gomock.Any()).Return(&employee.Employee{ID: 3, Name: "Bob"}, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("outbox down"))

		_, err := deps.service.NewEmployee(ctx, dto)

		assert.EqualError(t, err, "outbox down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("begin tx error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		_, err := deps.service.NewEmployee(context.Background(), dto)

		assert.EqualError(t, err, "pool exhausted")
	})

	t.Run("without outbox no event is written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(db, repo, employee.NewModelAssembler("http://hr.local"))
		ctx := context.Background()

		expectTx(t, sqlMock, true)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().Save(ctx, gomock.Any()).Return(&employee.Employee{ID: 4, Name: "Bob"}, nil)

		res, err := svc.NewEmployee(ctx, dto)

		assert.NoError(t, err)
		assert.Equal(t, "http://hr.local/employees/4", res.Location)
	})
}

func TestEmployeeService_Save(t *testing.T) {
	dto := employee.EmployeeDTO{Name: "New", Role: "Lead", Email: "new@example.com"}

	t.Run("existing record is replaced in place", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		existing := &employee.Employee{ID: 1, Name: "Old", Role: "Intern", Email: "old@example.com"}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(1)).Return(existing, nil)
		deps.repo.EXPECT().
			Save(ctx, existing).
			DoAndReturn(func(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
				assert.Equal(t, int64(1), e.ID)
				assert.Equal(t, "New", e.Name)
				assert.Equal(t, "Lead", e.Role)
				assert.Equal(t, "new@example.com", e.Email)
				return e, nil
			})
		expectOutbox(t, deps, events.EmployeeUpdated, "1")

		res, err := deps.service.Save(ctx, dto, 1)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Equal(t, "/employees/1", res.Model.Links.Self())
		assert.Equal(t, dto, res.Model.EmployeeDTO)
	})

	// The requested id is not forced onto the new record; the store picks one.
	t.Run("missing record is created with a store assigned id", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(2)).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
				assert.Zero(t, e.ID)
				e.ID = 11
				return e, nil
			})
		expectOutbox(t, deps, events.EmployeeCreated, "11")

		res, err := deps.service.Save(ctx, dto, 2)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Equal(t, "/employees/11", res.Location)
		assert.NotEqual(t, "/employees/2", res.Location)
	})

	t.Run("lookup failure aborts", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(3)).Return(nil, errors.New("db error"))

		_, err := deps.service.Save(ctx, dto, 3)

		assert.EqualError(t, err, "db error")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("value too long maps to invalid input", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(1)).Return(&employee.Employee{ID: 1}, nil)
		deps.repo.EXPECT().Save(ctx, gomock.Any()).Return(nil, &pgconn.PgError{Code: "22001"})

		_, err := deps.service.Save(ctx, dto, 1)

		assert.ErrorIs(t, err, employeeerrors.ErrFieldTooLong)
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
	})
}

func TestEmployeeService_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("always 204", func(t *testing.T) {
		for _, id := range []int64{1, 999} {
			deps := setupServiceTest(t)

			expectTx(t, deps.sqlMock, true)
			deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
			deps.repo.EXPECT().DeleteByID(ctx, id).Return(nil)
			deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
			deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

			res, err := deps.service.DeleteByID(ctx, id)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, res.StatusCode)
			assert.Nil(t, res.Model)
		}
	})

	t.Run("repo error rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteByID(ctx, int64(1)).Return(errors.New("db error"))

		_, err := deps.service.DeleteByID(ctx, 1)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
