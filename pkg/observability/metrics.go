package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// Metrics publishes operational counters to CloudWatch. Publishing is
// fire-and-forget: a failed put is logged and dropped, never surfaced to the
// operation that recorded the metric.
type Metrics struct {
	client    *cloudwatch.Client
	namespace string
	logger    *zap.Logger
}

// NewMetrics creates a metrics publisher. A nil client yields a no-op
// publisher, which tests rely on.
func NewMetrics(namespace string, client *cloudwatch.Client, logger *zap.Logger) *Metrics {
	return &Metrics{
		client:    client,
		namespace: namespace,
		logger:    logger,
	}
}

// CountCascadeFailure records an isolated side-effect failure during a
// cascading operation, dimensioned by operation and sub-step
func (m *Metrics) CountCascadeFailure(ctx context.Context, operation, step string) {
	m.putCount(ctx, "CascadeStepFailure", []types.Dimension{
		{Name: aws.String("Operation"), Value: aws.String(operation)},
		{Name: aws.String("Step"), Value: aws.String(step)},
	})
}

// CountTokenVerification records the outcome of a verify-token call
func (m *Metrics) CountTokenVerification(ctx context.Context, outcome string) {
	m.putCount(ctx, "TokenVerification", []types.Dimension{
		{Name: aws.String("Outcome"), Value: aws.String(outcome)},
	})
}

func (m *Metrics) putCount(ctx context.Context, name string, dims []types.Dimension) {
	if m == nil || m.client == nil {
		return
	}

	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(name),
				Dimensions: dims,
				Timestamp:  aws.Time(time.Now()),
				Unit:       types.StandardUnitCount,
				Value:      aws.Float64(1),
			},
		},
	})
	if err != nil && m.logger != nil {
		m.logger.Warn("Failed to publish metric",
			zap.String("metric", name),
			zap.Error(err),
		)
	}
}
