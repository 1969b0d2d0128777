package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/BrandonKowalski/autonav/pkg/autonav"
	"github.com/BrandonKowalski/autonav/pkg/autonav/config"
	"github.com/BrandonKowalski/autonav/pkg/autonav/metrics"
	"github.com/BrandonKowalski/autonav/pkg/autonav/router"
	"github.com/BrandonKowalski/autonav/pkg/autonav/stack"
)

// app is a wired demo host: an in-memory stack with a main page at the root,
// an engine with the demo screens and actions, and a router bound to both.
type app struct {
	out      *printer
	host     *stack.Stack
	router   *router.Router
	registry *prometheus.Registry
}

func newApp(cfg *Config, out io.Writer) (*app, error) {
	autonav.ConfigureLogging(autonav.LogOptions{
		LogPath:  cfg.LogFile,
		Output:   os.Stderr,
		Level:    cfg.LogLevel,
		Internal: strings.EqualFold(cfg.LogLevel, "debug"),
	})

	if cfg.NoColor {
		color.NoColor = true
	}

	p, err := newPrinter(out, cfg.Language)
	if err != nil {
		return nil, err
	}

	a := &app{out: p}

	options := autonav.Options{}
	if cfg.Metrics {
		a.registry = prometheus.NewRegistry()
		collector, err := metrics.New(a.registry)
		if err != nil {
			return nil, err
		}
		options.Observer = collector
	}

	engine := autonav.New(options)
	if err := registerScreens(engine, p); err != nil {
		return nil, err
	}

	if cfg.Actions != "" {
		if err := config.RegisterFile(engine, cfg.Actions); err != nil {
			return nil, fmt.Errorf("load actions: %w", err)
		}
	}
	if err := engine.RegisterContainer(builtinActions(engine, p)); err != nil {
		return nil, err
	}

	a.host = stack.New(newPage(KindMain, p))
	a.router = router.New(engine, a.host, router.Options{})
	return a, nil
}

func (a *app) close() {
	a.router.Close()
	autonav.CloseLogger()
}

// printMetrics prints every counter sample gathered from the registry.
func (a *app) printMetrics() error {
	if a.registry == nil {
		return nil
	}

	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	a.out.say("MetricsHeader", nil)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if metric.GetCounter() == nil {
				continue
			}

			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", label.GetName(), label.GetValue()))
			}
			sort.Strings(labels)

			fmt.Fprintf(a.out.out, "  %s{%s} %s\n", family.GetName(), strings.Join(labels, ","), humanize.Ftoa(metric.GetCounter().GetValue()))
		}
	}
	return nil
}
