package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lovoo/goka"
	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
)

var _ port.ProductFilterView = (*ProductFilterView)(nil)

// A ProductFilterView reads the group table of [ProductFilterProcessor].
type ProductFilterView struct {
	opPrefix string
	gv       *goka.View
}

func NewProductFilterView(
	seedBrokers []string, groupTable string, opts ...goka.ViewOption,
) (*ProductFilterView, error) {
	const op = "NewProductFilterView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(groupTable)),
		blockValueCodec{},
		opts...,
	)
	if err != nil {
		return nil, opErr(err, op)
	}

	return &ProductFilterView{opPrefix: "ProductFilterView", gv: gv}, nil
}

// Run starts the view in the background. stopFn is called when the view
// stops.
func (v *ProductFilterView) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "Run"
	log := slog.With("op", makeOp(v.opPrefix, op))

	defer wg.Done()

	go func() {
		defer stopFn()
		if err := v.gv.Run(ctx); err != nil {
			log.Error("stopped", "err", err)
			return
		}
		log.Info("stopped")
	}()
	log.Info("running")
}

// Close is a no-op, the view stops with the context passed to Run.
func (v *ProductFilterView) Close() {}

// IsBlocked reports the block value of the product name. Unknown names are
// not blocked. The view must be recovered to answer.
func (v *ProductFilterView) IsBlocked(productName string) (bool, error) {
	const op = "IsBlocked"

	if !v.gv.Recovered() {
		return false, opErr(
			fmt.Errorf("%w: filter table is recovering", domain.ErrUnavailable),
			v.opPrefix, op,
		)
	}

	value, err := v.gv.Get(productName)
	if err != nil {
		return false, opErr(err, v.opPrefix, op)
	}
	if value == nil {
		return false, nil
	}

	bv, ok := value.(blockValue)
	if !ok {
		return false, opErr(ErrInvalidValueType, v.opPrefix, op)
	}
	return bool(bv), nil
}
