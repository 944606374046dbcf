package queries

import (
	"context"
	"log/slog"
	"strings"

	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/domain/order"
	"dryclean-api/internal/infra"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/usecase/shared"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order.go -package=queriesmock

var (
	ErrOrderNotFound            = errs.New("order not found")
	ErrTrackingCriteriaRequired = errs.New("order code or phone number is required")
	ErrInvalidOrderCode         = errs.New("invalid order code")
)

type OrderQueries interface {
	ListForCustomer(ctx context.Context, customerID int64) ([]*CustomerOrderView, error)
	ListPage(ctx context.Context, rawPage string) (*AdminOrderPage, error)
	Track(ctx context.Context, code, phone string) (*TrackedOrderView, error)
	Dashboard(ctx context.Context) *DashboardView
}

// OrderReadStore returns rows with raw status and description; presentation fields
// are filled in here.
type OrderReadStore interface {
	ListForCustomer(ctx context.Context, customerID int64) ([]*CustomerOrderView, error)
	ListPaged(ctx context.Context, db sqlc.DBTX, limit, offset int) ([]*AdminOrderView, error)
	Count(ctx context.Context, db sqlc.DBTX) (int64, error)
	Track(ctx context.Context, orderID *int64, phone *string) (*TrackedOrderView, error)
	CountCustomers(ctx context.Context, db sqlc.DBTX) (int64, error)
	Revenue(ctx context.Context, db sqlc.DBTX) (int64, error)
}

const dashboardRecentOrders = 5

type orderQueriesImpl struct {
	uow     shared.UnitOfWork
	store   OrderReadStore
	perPage int
	logger  *slog.Logger
}

func NewOrderQueries(uow shared.UnitOfWork, store OrderReadStore, perPage int, logger *slog.Logger) OrderQueries {
	return &orderQueriesImpl{
		uow:     uow,
		store:   store,
		perPage: ValidatePerPage(perPage),
		logger:  logger,
	}
}

func (q *orderQueriesImpl) ListForCustomer(ctx context.Context, customerID int64) ([]*CustomerOrderView, error) {
	views, err := q.store.ListForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.Code = order.FormatCode(v.ID)
		v.StatusMessage = order.MessageFor(v.Status)
		v.DescriptionLines = order.SplitDescription(v.Description)
	}
	return views, nil
}

// ListPage reads the count and the page inside one read-only transaction so the page
// math matches the rows returned.
func (q *orderQueriesImpl) ListPage(ctx context.Context, rawPage string) (*AdminOrderPage, error) {
	page := Page{Number: ParsePage(rawPage), PerPage: q.perPage}

	result := &AdminOrderPage{
		Page:          page.Number,
		PerPage:       page.PerPage,
		StatusOptions: statusOptionStrings(),
	}

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		count, err := q.store.Count(ctx, db)
		if err != nil {
			return err
		}
		rows, err := q.store.ListPaged(ctx, db, page.PerPage, page.Offset())
		if err != nil {
			return err
		}
		result.TotalCount = count
		result.Orders = rows
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.TotalPages = TotalPages(result.TotalCount, page.PerPage)
	decorateAdminOrders(result.Orders)
	return result, nil
}

func (q *orderQueriesImpl) Track(ctx context.Context, code, phone string) (*TrackedOrderView, error) {
	code = strings.TrimSpace(code)
	phone = customer.NormalizePhone(phone)
	if code == "" && phone == "" {
		return nil, ErrTrackingCriteriaRequired
	}

	var orderID *int64
	if code != "" {
		id, err := order.ParseCode(code)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidOrderCode)
		}
		orderID = &id
	}

	var phonePtr *string
	if phone != "" {
		phonePtr = &phone
	}

	v, err := q.store.Track(ctx, orderID, phonePtr)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	v.Code = order.FormatCode(v.ID)
	v.StatusMessage = order.MessageFor(v.Status)
	v.DescriptionLines = order.SplitDescription(v.Description)
	return v, nil
}

// Dashboard degrades to a zeroed summary when the store is unavailable.
func (q *orderQueriesImpl) Dashboard(ctx context.Context) *DashboardView {
	view := &DashboardView{RecentOrders: []*AdminOrderView{}}

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		customers, err := q.store.CountCustomers(ctx, db)
		if err != nil {
			return err
		}
		orders, err := q.store.Count(ctx, db)
		if err != nil {
			return err
		}
		revenue, err := q.store.Revenue(ctx, db)
		if err != nil {
			return err
		}
		recent, err := q.store.ListPaged(ctx, db, dashboardRecentOrders, 0)
		if err != nil {
			return err
		}

		view.TotalCustomers = customers
		view.TotalOrders = orders
		view.Revenue = catalog.NewMoney(revenue)
		view.RecentOrders = recent
		return nil
	})
	if err != nil {
		q.logger.Warn("dashboard summary unavailable", "error", err.Error())
		return &DashboardView{RecentOrders: []*AdminOrderView{}}
	}

	decorateAdminOrders(view.RecentOrders)
	return view
}

func decorateAdminOrders(views []*AdminOrderView) {
	for _, v := range views {
		v.Code = order.FormatCode(v.ID)
		v.StatusMessage = order.MessageFor(v.Status)
		v.DescriptionLines = order.SplitDescription(v.Description)
	}
}

func statusOptionStrings() []string {
	opts := order.StatusOptions()
	out := make([]string, len(opts))
	for i, s := range opts {
		out[i] = s.String()
	}
	return out
}
