package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/toko-billing/internal/obs"
	"github.com/noah-isme/toko-billing/internal/pricing"
	"github.com/noah-isme/toko-billing/internal/records"
)

// DataDir is the directory Run reads its CSV files from.
const DataDir = "data"

// Engine generates billing reports from a record source.
type Engine struct {
	Source  records.Source
	Policy  pricing.Policy
	Logger  zerolog.Logger
	Metrics *obs.ReportMetrics
	Tracer  trace.Tracer
	// Out receives a copy of every generated report when set.
	Out io.Writer
}

// Run generates the report from DataDir with the default rates, prints it
// to stdout and returns it.
func Run() (string, error) {
	engine := &Engine{
		Source: records.NewDirSource(DataDir),
		Policy: pricing.DefaultPolicy(),
		Logger: obs.NewLogger("console", "warn"),
		Out:    os.Stdout,
	}
	return engine.Generate(context.Background())
}

// Generate runs the full pipeline. Nothing is written to Out unless every
// source loaded successfully.
func (e *Engine) Generate(ctx context.Context) (string, error) {
	start := time.Now()
	report, err := e.generate(ctx)
	e.Metrics.ObserveRun(err, time.Since(start))
	if err != nil {
		e.Logger.Error().Err(err).Msg("generate report")
		return "", err
	}
	return report, nil
}

func (e *Engine) generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if e.Source == nil {
		return "", fmt.Errorf("report: record source not configured")
	}

	ctx, span := e.tracer().Start(ctx, "report.generate")
	defer span.End()

	ds, err := e.load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load records")
		return "", fmt.Errorf("load records: %w", err)
	}

	_, buildSpan := e.tracer().Start(ctx, "report.build")
	statements, orphans := BuildStatements(ds, e.Policy)
	buildSpan.SetAttributes(
		attribute.Int("report.customers", len(statements)),
		attribute.Int("report.orphans", len(orphans)),
	)
	buildSpan.End()

	for _, id := range orphans {
		e.Logger.Warn().Str("customer_id", id).Msg("orders reference unknown customer, skipped")
	}
	e.Metrics.AddCustomers(len(statements))
	e.Metrics.AddOrphans(len(orphans))

	report := Format(statements)
	if e.Out != nil {
		if _, err := io.WriteString(e.Out, report+"\n"); err != nil {
			return "", fmt.Errorf("write report: %w", err)
		}
	}

	e.Logger.Info().
		Int("customers", len(statements)).
		Int("orders", len(ds.Orders)).
		Int("orphans", len(orphans)).
		Msg("report generated")
	return report, nil
}

func (e *Engine) load(ctx context.Context) (records.Dataset, error) {
	_, span := e.tracer().Start(ctx, "report.load")
	defer span.End()

	ds, err := records.Load(e.Source, e.Logger)
	if err != nil {
		return records.Dataset{}, err
	}
	e.Metrics.SetLoaded("customers", len(ds.Customers))
	e.Metrics.SetLoaded("products", len(ds.Products))
	e.Metrics.SetLoaded("shipping_zones", len(ds.Zones))
	e.Metrics.SetLoaded("promotions", len(ds.Promotions))
	e.Metrics.SetLoaded("orders", len(ds.Orders))
	span.SetAttributes(attribute.Int("records.orders", len(ds.Orders)))
	return ds, nil
}

func (e *Engine) tracer() trace.Tracer {
	if e.Tracer != nil {
		return e.Tracer
	}
	return obs.Tracer()
}
