// Package telemetry wires the OpenTelemetry tracer provider from config.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/zjrosen/audioreg/internal/config"
	"github.com/zjrosen/audioreg/internal/log"
)

// ShutdownFunc flushes pending spans and releases exporter resources.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup installs a global tracer provider for cfg.Exporter. With no exporter
// configured the global provider is left as the default no-op.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (ShutdownFunc, error) {
	var (
		exporter sdktrace.SpanExporter
		closer   io.Closer
		err      error
	)

	switch cfg.Exporter {
	case "":
		return noopShutdown, nil
	case "stdout":
		var w io.Writer
		w, closer, err = traceWriter(cfg.File)
		if err != nil {
			return nil, err
		}
		exporter, err = stdouttrace.New(stdouttrace.WithWriter(w))
	case "otlp":
		exporter, err = otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.Endpoint),
			otlptracegrpc.WithInsecure())
	default:
		return nil, fmt.Errorf("unknown trace exporter %q", cfg.Exporter)
	}
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("creating %s exporter: %w", cfg.Exporter, err)
	}

	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)
	log.Info(log.CatTelemetry, "Tracing enabled", "exporter", cfg.Exporter)

	return func(ctx context.Context) error {
		err := provider.Shutdown(ctx)
		if closer != nil {
			if cerr := closer.Close(); err == nil {
				err = cerr
			}
		}
		return err
	}, nil
}

// traceWriter opens the stdout exporter's target. Without a file, spans go to
// stderr so they never mix with command output.
func traceWriter(path string) (io.Writer, io.Closer, error) {
	if path == "" {
		return os.Stderr, nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening trace file: %w", err)
	}
	return f, f, nil
}
