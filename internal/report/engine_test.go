package report_test

import (
	"bytes"
	"context"
	"os"
	"testing"
	"testing/fstest"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/noah-isme/toko-billing/internal/obs"
	"github.com/noah-isme/toko-billing/internal/pricing"
	"github.com/noah-isme/toko-billing/internal/records"
	"github.com/noah-isme/toko-billing/internal/report"
)

const mockedReport = `Customer: Alice (C001)
Level: PREMIUM | Zone: ZONE1 | Currency: EUR
Subtotal: 200.00
Discount: 20.00
  - Volume discount: 20.00
  - Loyalty discount: 0.00
Tax: 36.00
Shipping (ZONE1, 2.0kg): 0.00
Total: 216.00 EUR
Loyalty Points: 2

Customer: Bob (C002)
Level: BASIC | Zone: ZONE2 | Currency: EUR
Subtotal: 50.00
Discount: 0.00
  - Volume discount: 0.00
  - Loyalty discount: 0.00
Tax: 10.00
Shipping (ZONE2, 1.0kg): 0.00
Total: 60.00 EUR
Loyalty Points: 0
`

func mockedSource() records.DirSource {
	return records.DirSource{FS: fstest.MapFS{
		records.CustomersFile:  {Data: []byte("id,name,level,shipping_zone,currency\nC001,Alice,PREMIUM,ZONE1,EUR\nC002,Bob,BASIC,ZONE2,EUR")},
		records.ProductsFile:   {Data: []byte("id,name,desc,price,weight,taxable\nP001,Prod,Desc,100,1,true")},
		records.OrdersFile:     {Data: []byte("id,customerId,productId,qty,price,date,promo,time\nO001,C001,P001,2,100,2026-01-16,,12:00\nO002,C002,P002,1,50,2026-01-16,,12:00")},
		records.ZonesFile:      {Data: []byte("ZONE1,5,0.5")},
		records.PromotionsFile: {Data: []byte("")},
	}}
}

func newEngine(src records.Source) *report.Engine {
	return &report.Engine{
		Source: src,
		Policy: pricing.DefaultPolicy(),
		Logger: zerolog.Nop(),
	}
}

func readGolden(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/report.golden")
	require.NoError(t, err)
	return string(data)
}

func TestGenerateMockedScenario(t *testing.T) {
	t.Parallel()

	out, err := newEngine(mockedSource()).Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, mockedReport, out)
	require.Contains(t, out, "Customer: Alice (C001)")
	require.Contains(t, out, "Total: 216.00 EUR")
	require.Contains(t, out, "Total: 60.00 EUR")
}

func TestGenerateMatchesGolden(t *testing.T) {
	t.Parallel()

	out, err := newEngine(records.NewDirSource("testdata/data")).Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, readGolden(t), out)
}

func TestGenerateIsIdempotent(t *testing.T) {
	t.Parallel()

	engine := newEngine(records.NewDirSource("testdata/data"))
	first, err := engine.Generate(context.Background())
	require.NoError(t, err)
	second, err := engine.Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestGenerateSkipsUnknownCustomers(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	reg := prometheus.NewRegistry()
	engine := newEngine(records.NewDirSource("testdata/data"))
	engine.Logger = obs.NewLoggerTo(&logs, "json", "warn")
	engine.Metrics = obs.NewReportMetrics("billing", reg)

	out, err := engine.Generate(context.Background())
	require.NoError(t, err)
	require.NotContains(t, out, "C999")
	require.Contains(t, logs.String(), `"customer_id":"C999"`)
	require.Equal(t, 1.0, testutil.ToFloat64(engine.Metrics.OrphanCustomers))
	require.Equal(t, 4.0, testutil.ToFloat64(engine.Metrics.Customers))
	require.Equal(t, 8.0, testutil.ToFloat64(engine.Metrics.RecordsLoaded.WithLabelValues("orders")))
	require.Equal(t, 1.0, testutil.ToFloat64(engine.Metrics.Runs.WithLabelValues("ok")))
}

func TestGenerateKeepsCustomersAfterStrayQuote(t *testing.T) {
	t.Parallel()

	engine := newEngine(records.DirSource{FS: fstest.MapFS{
		records.CustomersFile: {Data: []byte("id,name,level,shipping_zone,currency\nC001,\"Alice,BASIC,ZONE1,EUR\nC002,Bob,BASIC,ZONE1,EUR\n")},
		records.ProductsFile:  {Data: []byte("id,name,desc,price,weight,taxable\nP001,Prod,Desc,10,1,true\n")},
		records.ZonesFile:     {Data: []byte("name,base,perKg\nZONE1,5,0.5\n")},
		records.OrdersFile:    {Data: []byte("id,customerId,productId,qty,price,date,promo,time\nO001,C002,P001,1,10,2026-01-16,,12:00\n")},
	}})

	out, err := engine.Generate(context.Background())
	require.NoError(t, err)
	require.Contains(t, out, "Customer: Bob (C002)")
}

func TestGenerateMirrorsToOut(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	engine := newEngine(mockedSource())
	engine.Out = &out

	got, err := engine.Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, got+"\n", out.String())
}

func TestGenerateFailsBeforeOutput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	reg := prometheus.NewRegistry()
	engine := newEngine(records.DirSource{FS: fstest.MapFS{
		records.ProductsFile: {Data: []byte("h\n")},
		records.ZonesFile:    {Data: []byte("h\n")},
		records.OrdersFile:   {Data: []byte("h\nO1,C1,P1,1,10,2026-01-16\n")},
	}})
	engine.Out = &out
	engine.Metrics = obs.NewReportMetrics("billing", reg)

	got, err := engine.Generate(context.Background())
	require.Error(t, err)
	require.True(t, records.IsMissing(err))
	require.Empty(t, got)
	require.Zero(t, out.Len())
	require.Equal(t, 1.0, testutil.ToFloat64(engine.Metrics.Runs.WithLabelValues("error")))
}

func TestGenerateCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newEngine(mockedSource()).Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateWithoutOrders(t *testing.T) {
	t.Parallel()

	out, err := newEngine(records.DirSource{FS: fstest.MapFS{
		records.CustomersFile: {Data: []byte("h\nC001,Alice\n")},
		records.ProductsFile:  {Data: []byte("h\n")},
		records.ZonesFile:     {Data: []byte("h\n")},
		records.OrdersFile:    {Data: []byte("h\n")},
	}}).Generate(context.Background())
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestGenerateRecordsSpans(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	engine := newEngine(mockedSource())
	engine.Tracer = provider.Tracer(obs.TracerName)

	_, err := engine.Generate(context.Background())
	require.NoError(t, err)

	var names []string
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}
	require.ElementsMatch(t, []string{"report.load", "report.build", "report.generate"}, names)
}

func TestRunUsesDataDirectory(t *testing.T) {
	want := readGolden(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir("testdata"))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, err := report.Run()
	require.NoError(t, err)
	require.Equal(t, want, out)
}
