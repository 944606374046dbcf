package commands

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"dryclean-api/internal/domain/branch"
	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/domain/order"
	"dryclean-api/internal/infra"
	"dryclean-api/internal/pkg/clock"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/pkg/metrics"
	"dryclean-api/internal/usecase/queries"
	"dryclean-api/internal/usecase/shared"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order.go -package=commandsmock

var (
	ErrMissingBranchOrAddress = errs.New("branch and address are required")
	ErrBranchNotFound         = errs.New("branch not found")
	ErrOrderNotFound          = errs.New("order not found")
)

type CreateOrderRequest struct {
	Branch        string
	Address       string
	PaymentMethod string
	Lines         []order.LineRequest
	BagCount      string
}

type CreateOrderResult struct {
	ID    int64
	Code  string
	Total catalog.Money
	Quote order.Quote
}

type UpdateStatusResult struct {
	OrderID int64
	Status  order.Status
	Changed bool
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, customerID int64, req CreateOrderRequest) (*CreateOrderResult, error)
	// Quote prices a cart against the current catalog without persisting anything.
	Quote(ctx context.Context, lines []order.LineRequest, rawBagCount string) (*order.Quote, error)
	UpdateStatus(ctx context.Context, orderID int64, rawStatus string) (*UpdateStatusResult, error)
}

type orderCommandsImpl struct {
	uow        shared.UnitOfWork
	catalog    queries.CatalogQueries
	calculator order.PriceCalculator
	publisher  shared.OrderEventPublisher
	clock      clock.Clock
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	catalogQueries queries.CatalogQueries,
	calculator order.PriceCalculator,
	publisher shared.OrderEventPublisher,
	clk clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) OrderCommands {
	return &orderCommandsImpl{
		uow:        uow,
		catalog:    catalogQueries,
		calculator: calculator,
		publisher:  publisher,
		clock:      clk,
		metrics:    m,
		logger:     logger,
	}
}

func (uc *orderCommandsImpl) Quote(ctx context.Context, lines []order.LineRequest, rawBagCount string) (*order.Quote, error) {
	q, err := uc.calculator.Quote(uc.catalog.Current(ctx), lines, ParseBagCount(rawBagCount))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return &q, nil
}

func (uc *orderCommandsImpl) CreateOrder(ctx context.Context, customerID int64, req CreateOrderRequest) (*CreateOrderResult, error) {
	address := strings.TrimSpace(req.Address)
	if strings.TrimSpace(req.Branch) == "" || address == "" {
		return nil, ErrMissingBranchOrAddress
	}

	selector, err := branch.ParseSelector(req.Branch)
	if err != nil {
		return nil, errs.Mark(err, ErrMissingBranchOrAddress)
	}

	quote, err := uc.Quote(ctx, req.Lines, req.BagCount)
	if err != nil {
		return nil, err
	}

	var created *order.Order
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := uc.resolveBranch(ctx, tx, selector)
		if derr != nil {
			return derr
		}

		header := order.Header{
			Branch:        b.City() + " - " + b.Name(),
			Address:       address,
			PaymentMethod: req.PaymentMethod,
		}
		o, derr := order.NewOrder(customerID, b.ID(), header, *quote, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}

		id, derr := tx.Orders().Create(ctx, tx.DB(), o)
		if derr != nil {
			return derr
		}
		o.AssignID(id)
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.OrderCreated(created.Total().Lira())
	uc.publish(ctx, shared.OrderEvent{
		Type:       shared.OrderCreated,
		OrderID:    created.ID(),
		CustomerID: customerID,
		Status:     created.Status().String(),
		Total:      created.Total().String(),
		OccurredAt: created.CreatedAt(),
	})

	return &CreateOrderResult{
		ID:    created.ID(),
		Code:  created.Code(),
		Total: created.Total(),
		Quote: *quote,
	}, nil
}

// resolveBranch looks a numeric selector up by id. A "City - Name" selector matches an
// active branch or creates one.
func (uc *orderCommandsImpl) resolveBranch(ctx context.Context, tx shared.Tx, sel branch.Selector) (*branch.Branch, error) {
	if sel.ByID() {
		b, err := tx.Branches().FindByID(ctx, tx.DB(), sel.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBranchNotFound
			}
			return nil, err
		}
		return b, nil
	}

	b, err := tx.Branches().FindActiveByCityName(ctx, tx.DB(), sel.City, sel.Name)
	if err == nil {
		return b, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	b, err = branch.NewBranch(sel.Name, sel.City, nil, nil, true)
	if err != nil {
		return nil, errs.Mark(err, ErrMissingBranchOrAddress)
	}
	id, err := tx.Branches().Create(ctx, tx.DB(), b)
	if err != nil {
		return nil, err
	}
	b.AssignID(id)
	uc.logger.Info("branch created from order selector", "branch_id", id, "city", sel.City, "name", sel.Name)
	return b, nil
}

func (uc *orderCommandsImpl) UpdateStatus(ctx context.Context, orderID int64, rawStatus string) (*UpdateStatusResult, error) {
	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	result := &UpdateStatusResult{OrderID: orderID, Status: status}
	var prev string
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Orders().StatusForUpdate(ctx, tx.DB(), orderID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return derr
		}
		if current == status.String() {
			return nil
		}
		if derr = tx.Orders().SetStatus(ctx, tx.DB(), orderID, status); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return derr
		}
		prev = current
		result.Changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Changed {
		uc.metrics.StatusChanged(status.String())
		uc.publish(ctx, shared.OrderEvent{
			Type:       shared.OrderStatusChanged,
			OrderID:    orderID,
			Status:     status.String(),
			PrevStatus: prev,
			OccurredAt: uc.clock.Now(),
		})
	}
	return result, nil
}

func (uc *orderCommandsImpl) publish(ctx context.Context, ev shared.OrderEvent) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.logger.Warn("failed to publish order event",
			"event_type", string(ev.Type),
			"order_id", ev.OrderID,
			"error", err.Error())
	}
}

// ParseBagCount treats unparsable or negative input as no bags. Counts too large for int
// come back past MaxBagCount so the calculator refuses them.
func ParseBagCount(raw string) int {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if errs.Is(err, strconv.ErrRange) && !strings.HasPrefix(s, "-") {
		return order.MaxBagCount + 1
	}
	if err != nil || n < 0 {
		return 0
	}
	return n
}
