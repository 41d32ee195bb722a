package tree

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	RBSetStatsName = "xset/rbset"
)

type fixupKind string

const (
	fixupDoubleRed   fixupKind = "double_red"
	fixupDoubleBlack fixupKind = "double_black"
)

var (
	applied        = metric.WithAttributeSet(attribute.NewSet(attribute.String("result", "applied")))
	ignored        = metric.WithAttributeSet(attribute.NewSet(attribute.String("result", "ignored")))
	leftRotation   = metric.WithAttributeSet(attribute.NewSet(attribute.String("direction", "left")))
	rightRotation  = metric.WithAttributeSet(attribute.NewSet(attribute.String("direction", "right")))
	doubleRedFix   = metric.WithAttributeSet(attribute.NewSet(attribute.String("kind", string(fixupDoubleRed))))
	doubleBlackFix = metric.WithAttributeSet(attribute.NewSet(attribute.String("kind", string(fixupDoubleBlack))))
)

type rbSetStats struct {
	size          metric.Int64ObservableUpDownCounter
	insertCount   metric.Int64Counter
	eraseCount    metric.Int64Counter
	rotationCount metric.Int64Counter
	fixupCount    metric.Int64Counter
}

func (stats *rbSetStats) IncreaseInsertCount(ok bool) {
	if stats == nil {
		return
	}
	if ok {
		stats.insertCount.Add(context.Background(), 1, applied)
		return
	}
	stats.insertCount.Add(context.Background(), 1, ignored)
}

func (stats *rbSetStats) IncreaseEraseCount(ok bool) {
	if stats == nil {
		return
	}
	if ok {
		stats.eraseCount.Add(context.Background(), 1, applied)
		return
	}
	stats.eraseCount.Add(context.Background(), 1, ignored)
}

func (stats *rbSetStats) IncreaseRotationCount(dir RBDirection) {
	if stats == nil {
		return
	}
	if dir == Left {
		stats.rotationCount.Add(context.Background(), 1, leftRotation)
		return
	}
	stats.rotationCount.Add(context.Background(), 1, rightRotation)
}

func (stats *rbSetStats) IncreaseFixupCount(kind fixupKind) {
	if stats == nil {
		return
	}
	if kind == fixupDoubleRed {
		stats.fixupCount.Add(context.Background(), 1, doubleRedFix)
		return
	}
	stats.fixupCount.Add(context.Background(), 1, doubleBlackFix)
}

func newRBSetStats[T any](ref *rbSet[T]) *rbSetStats {
	meterName := fmt.Sprintf("%s/%s", RBSetStatsName, ref.statsName)
	return &rbSetStats{
		size: lo.Must[metric.Int64ObservableUpDownCounter](otel.Meter(meterName).
			Int64ObservableUpDownCounter(
				"xset.rbset.size",
				metric.WithDescription("The number of elements in the set."),
				metric.WithInt64Callback(func(ctx context.Context, ob metric.Int64Observer) error {
					ob.Observe(atomic.LoadInt64(&ref.count))
					return nil
				}),
			),
		),
		insertCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"xset.rbset.insert.count",
				metric.WithDescription("The number of insertions, duplicates are ignored."),
			),
		),
		eraseCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"xset.rbset.erase.count",
				metric.WithDescription("The number of erasures, absent values are ignored."),
			),
		),
		rotationCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"xset.rbset.rotation.count",
				metric.WithDescription("The number of rotations."),
			),
		),
		fixupCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"xset.rbset.fixup.count",
				metric.WithDescription("The number of rebalance steps."),
			),
		),
	}
}
