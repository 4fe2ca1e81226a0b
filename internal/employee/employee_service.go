package employee

import (
	"context"
	"database/sql"
	"net/http"

	"employee-service/internal/events"
	"employee-service/internal/messaging/kafka"
	"employee-service/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	FindAll(ctx context.Context) (EmployeeCollection, error)
	FindByID(ctx context.Context, id int64) (EmployeeModel, error)
	FindByEmail(ctx context.Context, email string) (EmployeeModel, error)
	NewEmployee(ctx context.Context, dto EmployeeDTO) (Result, error)
	Save(ctx context.Context, dto EmployeeDTO, id int64) (Result, error)
	DeleteByID(ctx context.Context, id int64) (Result, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	assembler *ModelAssembler
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, assembler *ModelAssembler, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, assembler, nil, logger...)
}

// NewServiceWithOutbox records a lifecycle event in the same transaction as
// every write. A nil outbox disables events.
func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	assembler *ModelAssembler,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		assembler: assembler,
		outbox:    outboxRepo,
		logger:    l,
	}
}

func (s *service) FindAll(ctx context.Context) (EmployeeCollection, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("find all employees requested", zap.String("request_id", rid))

	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("find all employees failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeCollection{}, mapRepositoryError(err)
	}

	models := make([]EmployeeModel, len(empls))
	for i, e := range empls {
		models[i] = s.assembler.ToModel(e.ID, ToDTO(e))
	}

	return s.assembler.ToCollection(models), nil
}

func (s *service) FindByID(ctx context.Context, id int64) (EmployeeModel, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("find employee by id requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		err = mapRepositoryError(err)
		if isNotFound(err) {
			s.logger.Warn("employee not found", zap.String("request_id", rid), zap.Int64("employee_id", id))
		} else {
			s.logger.Error("find employee by id failed", zap.String("request_id", rid), zap.Error(err))
		}
		return EmployeeModel{}, err
	}

	return s.assembler.ToModel(empl.ID, ToDTO(*empl)), nil
}

func (s *service) FindByEmail(ctx context.Context, email string) (EmployeeModel, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("find employee by email requested",
		zap.String("request_id", rid),
		zap.String("email", email),
	)

	empl, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		err = mapRepositoryError(err)
		if isNotFound(err) {
			s.logger.Warn("employee not found by email", zap.String("request_id", rid), zap.String("email", email))
		} else {
			s.logger.Error("find employee by email failed", zap.String("request_id", rid), zap.Error(err))
		}
		return EmployeeModel{}, err
	}

	return s.assembler.ToModel(empl.ID, ToDTO(*empl)), nil
}

func (s *service) NewEmployee(ctx context.Context, dto EmployeeDTO) (Result, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", dto.Email),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return Result{}, err
	}
	defer tx.Rollback()

	saved, err := s.repo.WithTx(tx).Save(ctx, ToEntity(dto))
	if err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return Result{}, mapRepositoryError(err)
	}

	if err := s.recordEvent(ctx, tx, events.EmployeeCreated, saved.ID); err != nil {
		s.logger.Error("create employee outbox persist failed",
			zap.String("request_id", rid),
			zap.Int64("employee_id", saved.ID),
			zap.Error(err),
		)
		return Result{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return Result{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", saved.ID),
	)

	return s.created(saved), nil
}

// Save replaces every field of the employee with id. When no such employee
// exists a new one is created and the store assigns its id, which may differ
// from the id that was asked for.
func (s *service) Save(ctx context.Context, dto EmployeeDTO, id int64) (Result, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("save employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("save employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return Result{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	eventType := events.EmployeeUpdated
	target, err := qtx.FindByID(ctx, id)
	if err != nil {
		err = mapRepositoryError(err)
		if !isNotFound(err) {
			s.logger.Error("save employee fetch existing failed", zap.String("request_id", rid), zap.Error(err))
			return Result{}, err
		}
		s.logger.Info("save employee target missing, creating new record",
			zap.String("request_id", rid),
			zap.Int64("requested_id", id),
		)
		target = ToEntity(dto)
		eventType = events.EmployeeCreated
	} else {
		applyDTO(target, dto)
	}

	saved, err := qtx.Save(ctx, target)
	if err != nil {
		s.logger.Error("save employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return Result{}, mapRepositoryError(err)
	}

	if err := s.recordEvent(ctx, tx, eventType, saved.ID); err != nil {
		s.logger.Error("save employee outbox persist failed",
			zap.String("request_id", rid),
			zap.Int64("employee_id", saved.ID),
			zap.Error(err),
		)
		return Result{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("save employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return Result{}, err
	}

	s.logger.Info("save employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", saved.ID),
		zap.String("event_type", eventType),
	)

	return s.created(saved), nil
}

// DeleteByID reports 204 whether or not the employee existed.
func (s *service) DeleteByID(ctx context.Context, id int64) (Result, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return Result{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).DeleteByID(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("request_id", rid), zap.Error(err))
		return Result{}, mapRepositoryError(err)
	}

	if err := s.recordEvent(ctx, tx, events.EmployeeDeleted, id); err != nil {
		s.logger.Error("delete employee outbox persist failed", zap.String("request_id", rid), zap.Error(err))
		return Result{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return Result{}, err
	}

	s.logger.Info("delete employee success", zap.String("request_id", rid), zap.Int64("employee_id", id))

	return Result{StatusCode: http.StatusNoContent}, nil
}

func (s *service) created(empl *Employee) Result {
	model := s.assembler.ToModel(empl.ID, ToDTO(*empl))
	return Result{
		StatusCode: http.StatusCreated,
		Location:   model.Links.Self(),
		Model:      &model,
	}
}
