package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/vango-dev/uniqid/internal/config"
	"github.com/vango-dev/uniqid/internal/errors"
	"github.com/vango-dev/uniqid/pkg/middleware"
	"github.com/vango-dev/uniqid/pkg/server"
)

func serveCmd(global *globalOptions) *cobra.Command {
	var (
		port  int
		host  string
		scope string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo page with live resync",
		Long: `Serve the demo signup page at / and /signup.

Each page load is rendered on the server. A client connecting to the live
route receives the forced id writes for the page it activates. Settings
come from uniqid.json (or uniqid.yaml) found in the working directory or
its parents, or from --config. Defaults apply when no file exists.

Examples:
  uniqid serve
  uniqid serve --port 8080 --scope process
  uniqid serve -c ./deploy/uniqid.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global.configPath)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if scope != "" {
				cfg.Scope = scope
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().StringVar(&scope, "scope", "", "Generator scope: request or process")

	return cmd
}

// loadConfig reads path, or searches from the working directory. A missing
// file yields defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := config.FindProjectRoot(wd)
	if err != nil {
		if errors.HasCode(err, "E141") {
			return config.New(), nil
		}
		return nil, err
	}
	return config.Load(root)
}

// serverConfig maps the file configuration onto the server.
func serverConfig(cfg *config.Config) (*server.ServerConfig, error) {
	scope, err := cfg.GeneratorScope()
	if err != nil {
		return nil, err
	}
	return &server.ServerConfig{
		Address:     cfg.Address(),
		LivePath:    cfg.Server.LivePath,
		MetricsPath: cfg.Metrics.Path,
		Scope:       scope,
		Prefix:      cfg.Prefix,
		Pretty:      cfg.Render.Pretty,
	}, nil
}

func runServe(ctx context.Context, out io.Writer, cfg *config.Config) error {
	sc, err := serverConfig(cfg)
	if err != nil {
		return err
	}

	var opts []server.Option
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m := middleware.NewMetrics(
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithRegistry(reg),
		)
		opts = append(opts, server.WithMetrics(m, reg))
	}

	if cfg.Tracing.Enabled {
		tp, err := newTracerProvider(cfg.Tracing, out)
		if err != nil {
			return err
		}
		defer tp.Shutdown(context.Background())
		otel.SetTracerProvider(tp)
		opts = append(opts, server.WithTracing(middleware.NewTracing(
			middleware.WithTracerName(cfg.Tracing.ServiceName),
			middleware.WithRequestFilter(func(r *http.Request) bool {
				return r.URL.Path != "/healthz" && r.URL.Path != cfg.Metrics.Path
			}),
		)))
	}

	srv := server.New(sc, opts...)
	srv.Handle("/", demoPage())
	srv.Handle("/signup", demoPage())

	printBanner(out)
	success(out, "Listening on http://%s", sc.Address)
	info(out, "Scope:   %s", sc.Scope)
	info(out, "Prefix:  %s", sc.Prefix)
	info(out, "Pages:   %s", strings.Join(srv.Paths(), ", "))
	if cfg.Metrics.Enabled {
		info(out, "Metrics: %s", sc.MetricsPath)
	}
	if sc.Scope.String() == "process" {
		warn(out, "process scope shares one counter across requests; ids grow for the life of the process")
	}

	return srv.ListenAndServe(ctx)
}

// newTracerProvider builds the SDK provider for the configured exporter.
func newTracerProvider(tc config.TracingConfig, out io.Writer) (*sdktrace.TracerProvider, error) {
	res := resource.NewSchemaless(attribute.String("service.name", tc.ServiceName))

	if strings.EqualFold(tc.Exporter, config.ExporterNone) {
		return sdktrace.NewTracerProvider(sdktrace.WithResource(res)), nil
	}

	exp, err := stdouttrace.New(stdouttrace.WithWriter(out), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, errors.New("E123").Wrap(err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	), nil
}
