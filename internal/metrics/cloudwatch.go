package metrics

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/sirupsen/logrus"
)

// CloudWatchAPI defines the CloudWatch client interface used for metrics.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Emitter sends tool call metrics to CloudWatch.
type Emitter struct {
	client    CloudWatchAPI
	namespace string
}

// NewEmitter creates a CloudWatch metrics emitter.
func NewEmitter(cfg aws.Config, namespace string) *Emitter {
	return &Emitter{
		client:    cloudwatch.NewFromConfig(cfg),
		namespace: namespace,
	}
}

// LoadEmitter creates an emitter from the default AWS credential chain.
func LoadEmitter(ctx context.Context, region, namespace string) (*Emitter, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return NewEmitter(cfg, namespace), nil
}

// RecordToolCall publishes the invocation, error and latency metrics of one
// tool call. Publishing failures are logged and otherwise ignored.
func (e *Emitter) RecordToolCall(ctx context.Context, tool string, status string, duration time.Duration) {
	if err := e.EmitToolCall(context.WithoutCancel(ctx), tool, status, duration); err != nil {
		logrus.WithError(err).WithField("tool", tool).Warn("Failed to publish CloudWatch metrics")
	}
}

// EmitToolCall publishes the metrics of one tool call.
func (e *Emitter) EmitToolCall(ctx context.Context, tool string, status string, duration time.Duration) error {
	failed := 0
	if status != statusSuccess {
		failed = 1
	}
	toolDim := types.Dimension{Name: aws.String("Tool"), Value: aws.String(tool)}
	statusDim := types.Dimension{Name: aws.String("Status"), Value: aws.String(status)}

	metrics := []types.MetricDatum{
		metricDatum("ToolInvocations", types.StandardUnitCount, 1, toolDim, statusDim),
		metricDatum("ToolErrors", types.StandardUnitCount, float64(failed), toolDim),
		metricDatum("ToolLatency", types.StandardUnitMilliseconds, float64(duration.Milliseconds()), toolDim),
	}

	_, err := e.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(e.namespace),
		MetricData: metrics,
	})
	return err
}

func metricDatum(name string, unit types.StandardUnit, value float64, dims ...types.Dimension) types.MetricDatum {
	return types.MetricDatum{
		MetricName: aws.String(name),
		Dimensions: dims,
		Unit:       unit,
		Value:      aws.Float64(value),
	}
}
