// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "logistics/internal/delivery/context"
	"logistics/internal/domain/entity"
	domainerrors "logistics/internal/domain/errors"
	"logistics/internal/domain/repository"
	"logistics/internal/errors"
	"logistics/internal/usecase"
)

// recordService implements usecase.RecordUsecase on top of a RecordRepository.
type recordService[R any, D any] struct {
	kind   string
	repo   repository.RecordRepository[R, D]
	logger *slog.Logger

	// merge, when set, carries server-owned fields of the stored record into a full replacement.
	merge func(stored, next *R)
}

func newRecordService[R any, D any](kind string, repo repository.RecordRepository[R, D], logger *slog.Logger) *recordService[R, D] {
	return &recordService[R, D]{kind: kind, repo: repo, logger: logger}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recordService[R, D]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *recordService[R, D]) List(ctx context.Context, query repository.ListQuery) (*usecase.Page[D], error) {
	if query.Page < 1 {
		return nil, errors.Wrap(domainerrors.ErrInvalidPage, "page numbers start at 1")
	}

	items, total, err := srv.repo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s records", srv.kind)
	}

	return newPage(items, total, query)
}

func (srv *recordService[R, D]) Get(ctx context.Context, recID int64) (*D, error) {
	detail, err := srv.repo.FindByID(ctx, recID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s %d", srv.kind, recID)
	}

	return detail, nil
}

func (srv *recordService[R, D]) Create(ctx context.Context, record *R) (*D, error) {
	detail, err := srv.repo.Create(ctx, record)
	if err != nil {
		srv.log(ctx).Debug("Create rejected", slog.String("kind", srv.kind), slog.Any("error", err))

		return nil, errors.Wrapf(err, "failed to create %s", srv.kind)
	}

	return detail, nil
}

func (srv *recordService[R, D]) Update(ctx context.Context, recID int64, record *R) (*D, error) {
	if srv.merge != nil {
		stored, err := srv.repo.FindRecord(ctx, recID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load %s %d for update", srv.kind, recID)
		}
		srv.merge(stored, record)
	}

	detail, err := srv.repo.Update(ctx, recID, record)
	if err != nil {
		srv.log(ctx).Debug("Update rejected", slog.String("kind", srv.kind), slog.Int64("recID", recID), slog.Any("error", err))

		return nil, errors.Wrapf(err, "failed to update %s %d", srv.kind, recID)
	}

	return detail, nil
}

func (srv *recordService[R, D]) Patch(ctx context.Context, recID int64, apply func(*R) error) (*D, error) {
	record, err := srv.repo.FindRecord(ctx, recID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s %d for patch", srv.kind, recID)
	}

	stored := *record
	if err := apply(record); err != nil {
		return nil, errors.Wrapf(err, "failed to apply changes to %s %d", srv.kind, recID)
	}
	if srv.merge != nil {
		srv.merge(&stored, record)
	}

	detail, err := srv.repo.Update(ctx, recID, record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to patch %s %d", srv.kind, recID)
	}

	return detail, nil
}

func (srv *recordService[R, D]) Delete(ctx context.Context, recID int64) error {
	if err := srv.repo.Delete(ctx, recID); err != nil {
		return errors.Wrapf(err, "failed to delete %s %d", srv.kind, recID)
	}

	srv.log(ctx).Debug("Record deleted", slog.String("kind", srv.kind), slog.Int64("recID", recID))

	return nil
}

// newPage wraps one page of results. Only the first page may be empty.
func newPage[T any](items []*T, total int64, query repository.ListQuery) (*usecase.Page[T], error) {
	if query.Page > 1 && (query.Offset() < 0 || int64(query.Offset()) >= total) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPage, "page %d is past the last page", query.Page)
	}

	return &usecase.Page[T]{
		Items:    items,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

// NewEmployeeService is the constructor for the employee usecase.
func NewEmployeeService(repo repository.EmployeeRepository, logger *slog.Logger) usecase.EmployeeUsecase {
	return newRecordService("employee", repo, logger)
}

// NewMembershipService is the constructor for the membership usecase.
func NewMembershipService(repo repository.MembershipRepository, logger *slog.Logger) usecase.MembershipUsecase {
	return newRecordService("membership", repo, logger)
}

// NewCustomerService is the constructor for the customer usecase.
func NewCustomerService(repo repository.CustomerRepository, logger *slog.Logger) usecase.CustomerUsecase {
	return newRecordService("customer", repo, logger)
}

// NewShipmentService is the constructor for the shipment usecase.
func NewShipmentService(repo repository.ShipmentRepository, logger *slog.Logger) usecase.ShipmentUsecase {
	return newRecordService("shipment", repo, logger)
}

// NewStatusService is the constructor for the status usecase.
func NewStatusService(repo repository.StatusRepository, logger *slog.Logger) usecase.StatusUsecase {
	return newRecordService("status", repo, logger)
}

// NewManagementService is the constructor for the employee-manages-shipment usecase.
func NewManagementService(repo repository.ManagementRepository, logger *slog.Logger) usecase.ManagementUsecase {
	return newRecordService("employee shipment assignment", repo, logger)
}

// paymentService implements usecase.PaymentUsecase.
type paymentService struct {
	*recordService[entity.Payment, entity.PaymentDetail]
	paymentRepo repository.PaymentRepository
}

// NewPaymentService is the constructor for the payment usecase. An update
// that leaves Payment_ID blank, full or partial, keeps the stored identifier.
func NewPaymentService(repo repository.PaymentRepository, logger *slog.Logger) usecase.PaymentUsecase {
	records := newRecordService[entity.Payment, entity.PaymentDetail]("payment", repo, logger)
	records.merge = func(stored, next *entity.Payment) {
		if next.PaymentID == "" {
			next.PaymentID = stored.PaymentID
		}
	}

	return &paymentService{recordService: records, paymentRepo: repo}
}

func (srv *paymentService) ResolveRecID(ctx context.Context, paymentID string) (int64, error) {
	recID, err := srv.paymentRepo.FindRecIDByPaymentID(ctx, paymentID)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to resolve payment %q", paymentID)
	}

	return recID, nil
}
