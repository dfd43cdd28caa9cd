package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/vflib/graphdsl"
	"github.com/katalvlaran/vflib/logger"
	"github.com/katalvlaran/vflib/metrics"
	"github.com/katalvlaran/vflib/render"
	"github.com/katalvlaran/vflib/vf"
)

// ErrNegativeLimit is returned for a --limit below zero.
var ErrNegativeLimit = errors.New("vfmatch: --limit must not be negative")

type config struct {
	pattern, target string
	mode            vf.Mode
	all             bool
	limit           int
	context         bool
	dot             string
	metrics         bool
	logLevel        string
}

func newConfig(ctx *cli.Context) (*config, error) {
	mode, err := vf.ParseMode(ctx.String(modeFlag.Name))
	if err != nil {
		return nil, err
	}
	cfg := &config{
		pattern:  ctx.Path(patternFlag.Name),
		target:   ctx.Path(targetFlag.Name),
		mode:     mode,
		all:      ctx.Bool(allFlag.Name),
		limit:    ctx.Int(limitFlag.Name),
		context:  ctx.Bool(contextFlag.Name),
		dot:      ctx.Path(dotFlag.Name),
		metrics:  ctx.Bool(metricsFlag.Name),
		logLevel: ctx.String(logger.LogLevelFlag.Name),
	}
	if cfg.limit < 0 {
		return nil, errors.Wrapf(ErrNegativeLimit, "got %d", cfg.limit)
	}
	if !cfg.all {
		cfg.limit = 1
	}

	return cfg, nil
}

func matchAction(ctx *cli.Context) error {
	cfg, err := newConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.logLevel, "vfmatch")

	target, err := loadGraph(cfg.target)
	if err != nil {
		return err
	}
	pattern, err := loadGraph(cfg.pattern)
	if err != nil {
		return err
	}
	log.Infof("target %s: %d vertices, %d edges", cfg.target, target.VertexCount(), target.EdgeCount())
	log.Infof("pattern %s: %d vertices, %d edges", cfg.pattern, pattern.VertexCount(), pattern.EdgeCount())

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg, "vfmatch")
	if err != nil {
		return err
	}

	st, err := vf.NewState[graphdsl.Color, graphdsl.Color](target, pattern,
		vf.WithMode(cfg.mode),
		vf.WithContextCheck(cfg.context),
		vf.WithMaxMatches(cfg.limit),
		vf.WithLogger(log),
		vf.WithStatsObserver(collector),
	)
	if err != nil {
		return err
	}
	en, err := st.Matches()
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	start := time.Now()
	var first *vf.Mapping
	count := 0
	for m := range en.All() {
		count++
		if first == nil {
			first = &m
		}
		printMapping(w, count, target, pattern, m)
	}
	h, mins, sec := logger.ParseTime(time.Since(start))
	log.Noticef("%d match(es) in %dh %dm %ds", count, h, mins, sec)

	if count == 0 {
		fmt.Fprintln(w, "no match")
	}
	if cfg.dot != "" && first != nil {
		if err = writeDOT(cfg.dot, target, pattern, *first); err != nil {
			return err
		}
		log.Infof("match written to %s", cfg.dot)
	}
	if cfg.metrics {
		return printMetrics(w, reg)
	}

	return nil
}

func loadGraph(path string) (*graphdsl.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "vfmatch: open graph")
	}
	defer f.Close()

	return graphdsl.Parse(path, f)
}

func writeDOT(path string, target, pattern *graphdsl.Graph, m vf.Mapping) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "vfmatch: create dot file")
	}
	defer func() {
		err = errors.CombineErrors(err, f.Close())
	}()

	return render.MatchDOT(f, "vfmatch", target, pattern, m)
}

func printMapping(w io.Writer, n int, target, pattern *graphdsl.Graph, m vf.Mapping) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("match %d", n))
	t.AppendHeader(table.Row{"target", "pattern"})
	for _, p := range m.Pairs() {
		t.AppendRow(table.Row{labelOf(target, p.G1), labelOf(pattern, p.G2)})
	}
	t.Render()
}

func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "vfmatch: gather metrics")
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"metric", "labels", "value"})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			slices.Sort(labels)

			var value string
			switch {
			case m.GetCounter() != nil:
				value = fmt.Sprint(m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				value = fmt.Sprintf("count=%d sum=%g", h.GetSampleCount(), h.GetSampleSum())
			default:
				continue
			}
			t.AppendRow(table.Row{mf.GetName(), strings.Join(labels, ","), value})
		}
	}
	t.Render()

	return nil
}

func labelOf(g *graphdsl.Graph, id int) string {
	if label, ok := g.Label(id); ok {
		return label
	}

	return fmt.Sprint(id)
}
