package iges

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/entities"
	"github.com/zooyer/iges/scene"
)

type synthResult struct {
	primitives  []scene.Primitive
	diagnostics []core.Diagnostic
}

// Synthesize 按实体类型分派生成图元。每个实体互不影响，可以并行；
// 输出顺序与记录顺序一致。诊断同时写入日志。
func Synthesize(records []core.Record, opts ...Option) (*scene.Group, []core.Diagnostic) {
	var (
		o       = newOptions(opts)
		results = make([]synthResult, len(records))
		g       errgroup.Group
	)

	g.SetLimit(max(o.workers, 1))
	for i, rec := range records {
		g.Go(func() error {
			results[i] = synthesize(rec)
			return nil
		})
	}
	_ = g.Wait()

	var (
		group = scene.NewGroup()
		diags []core.Diagnostic
	)
	for _, r := range results {
		group.Add(r.primitives...)
		diags = append(diags, r.diagnostics...)
	}
	core.Emit(diags...)

	return group, diags
}

func synthesize(rec core.Record) synthResult {
	var (
		seq  = rec.Directory.Sequence
		diag = func(d core.Diagnostic) synthResult {
			d.Entity = seq
			return synthResult{diagnostics: []core.Diagnostic{d}}
		}
	)

	ent := entities.CreateEntity(rec.Type)
	if ent == nil {
		return diag(core.Infof(core.CodeUnknownType, "entity type %d is not recognized", int(rec.Type)))
	}

	if err := ent.Parse(rec); err != nil {
		return diag(failure(rec, err))
	}

	prims, err := ent.Primitives()
	if err != nil {
		return diag(failure(rec, err))
	}

	var result synthResult
	for _, p := range prims {
		p.Entity = seq
		if !p.Finite() {
			d := core.Warnf(core.CodeNonFinite, "%s has non-finite coordinates", rec.Type)
			d.Entity = seq
			result.diagnostics = append(result.diagnostics, d)
		}
		result.primitives = append(result.primitives, p)
	}

	return result
}

// failure 实体错误转为诊断
func failure(rec core.Record, err error) core.Diagnostic {
	switch {
	case errors.Is(err, core.ErrNotImplemented):
		return core.Infof(core.CodeNotImplemented, "%s is not implemented", rec.Type)
	case errors.Is(err, core.ErrUnsupportedForm):
		return core.Warnf(core.CodeUnsupportedForm, "%s form %d is not supported", rec.Type, rec.Directory.Form)
	}
	return core.Warnf(core.CodeShortParams, "%s: %v", rec.Type, err)
}
