package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mediasearch/mediasearch-cli/internal/config"
	"github.com/mediasearch/mediasearch-cli/internal/logging"
	"github.com/mediasearch/mediasearch-cli/internal/search"
	"github.com/mediasearch/mediasearch-cli/internal/telemetry"
	"github.com/mediasearch/mediasearch-cli/internal/ui/console"
)

const traceEndpointEnv = "MEDIASEARCH_TRACE_ENDPOINT"

func selectVariant(cfg config.Config) (config.Variant, error) {
	if pickVariant {
		return console.PickVariant(cfg)
	}
	return cfg.Variant(variantName)
}

// newClient builds the search client for the selected variant together with
// its tracer provider; the returned func flushes and stops tracing.
func newClient(ctx context.Context) (*search.Client, func(), error) {
	cfg := config.Get()
	v, err := selectVariant(cfg)
	if err != nil {
		return nil, nil, err
	}
	endpoint := cfg.Telemetry.ExporterEndpoint
	if endpoint == "" {
		endpoint = os.Getenv(traceEndpointEnv)
	}
	tp, err := telemetry.NewProvider(ctx, telemetry.Options{
		ExporterEndpoint: endpoint,
		ServiceName:      cfg.Telemetry.ServiceName,
	})
	if err != nil {
		return nil, nil, err
	}
	shutdown := func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			logging.Debug("trace shutdown: " + err.Error())
		}
	}
	logging.Debug(fmt.Sprintf("variant %s -> %s (tracing: %v)", v.Name, v.Endpoint, tp.Enabled()))
	return search.New(v, search.WithTracerProvider(tp.TracerProvider())), shutdown, nil
}
