// internal/appcore/core.go
package appcore

import (
	"context"
	"io"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"primerscan/internal/errs"
	"primerscan/internal/metrics"
	"primerscan/internal/pipeline"
	"primerscan/internal/sequence"
	"primerscan/internal/table"
	"primerscan/internal/writers"
)

type Options struct {
	Threads int
	Prefix  string

	Progress pipeline.Progress // optional
	Metrics  *metrics.Collector
	Log      *log.Logger
}

// TableReport describes one written table.
type TableReport struct {
	Name     string
	Location string
	Rows     int
}

// Report summarizes a run. Failures are recovered locally and surface here.
type Report struct {
	Tables        []TableReport
	UnitFailures  []*errs.UnitError
	WriteFailures []*errs.WriteError
	Hits          int
}

// Failed reports whether any unit or table failed.
func (r Report) Failed() bool { return len(r.UnitFailures) > 0 || len(r.WriteFailures) > 0 }

// Run drives primer collections (in the given order) across every contig
// (in load order). Each collection's table is written exactly once, after
// its last contig. A failed write affects only that collection.
//
// The returned error is reserved for cancellation and for collections whose
// table names collide (checked before any work); everything else is in the
// Report.
func Run(
	ctx context.Context,
	o Options,
	collections []sequence.Collection,
	contigs sequence.Collection,
	m pipeline.Matcher,
	sink writers.Sink,
) (Report, error) {
	lg := o.Log
	if lg == nil {
		lg = log.New()
		lg.SetOutput(io.Discard)
	}
	prefix := o.Prefix
	var rep Report

	sources := make([]string, len(collections))
	for i, coll := range collections {
		sources[i] = coll.Source
	}
	if err := table.CheckNames(sources, prefix); err != nil {
		return rep, err
	}

	for i, coll := range collections {
		tbl := table.New(coll.Source, prefix)
		for _, contig := range contigs.Records {
			lg.Infof("sequence: %s - primer collection: %s (%d / %d)",
				contig.Name, filepath.Base(coll.Source), i+1, len(collections))

			res, err := pipeline.Dispatch(ctx,
				pipeline.Config{Threads: o.Threads, Metrics: o.Metrics},
				contig, coll.Records, m, o.Progress)
			if err != nil {
				return rep, err
			}
			for _, f := range res.Failures {
				lg.WithField("table", tbl.Name).Warnf("work unit failed: %v", f)
			}
			rep.UnitFailures = append(rep.UnitFailures, res.Failures...)
			tbl.Add(res.Hits)
		}

		if err := sink.WriteTable(ctx, tbl); err != nil {
			if ctx.Err() != nil {
				return rep, ctx.Err()
			}
			werr := &errs.WriteError{Table: tbl.Name, Err: err}
			rep.WriteFailures = append(rep.WriteFailures, werr)
			o.Metrics.ObserveTable(false)
			lg.Error(werr)
			continue
		}
		o.Metrics.ObserveTable(true)
		rep.Hits += tbl.Len()
		rep.Tables = append(rep.Tables, TableReport{Name: tbl.Name, Location: sink.Location(tbl.Name), Rows: tbl.Len()})
		lg.WithField("rows", tbl.Len()).Infof("wrote %s", sink.Location(tbl.Name))
	}
	return rep, nil
}
