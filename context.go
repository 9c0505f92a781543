package iges

import (
	"io"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/zooyer/iges/core"
)

// DecodeContext 解码过程中的中间结果。每个阶段返回新的值，不修改旧值。
type DecodeContext struct {
	opts        options
	sections    core.Sections
	start       string
	global      Global
	directory   []core.Directory
	parameters  []core.Parameter
	terminate   Terminate
	records     []core.Record
	diagnostics []core.Diagnostic
}

// with 追加诊断，Clip 保证不与旧值共享底层数组
func (c DecodeContext) with(diags ...core.Diagnostic) DecodeContext {
	c.diagnostics = append(slices.Clip(c.diagnostics), diags...)
	return c
}

// Diagnostics 到目前为止的诊断
func (c DecodeContext) Diagnostics() []core.Diagnostic {
	return slices.Clone(c.diagnostics)
}

// split 按段分拣物理行
func (c DecodeContext) split(r io.Reader) (DecodeContext, error) {
	sections, diags, err := core.SplitSections(r)
	if err != nil {
		return c, err
	}
	c.sections = sections
	return c.with(diags...), nil
}

// parseSections 全局段决定分隔符，先解析；其余四段互不依赖，并行解析后按段顺序合并诊断
func (c DecodeContext) parseSections() DecodeContext {
	global, diags := parseGlobal(c.sections.Global)
	if c.sections.Lines[core.SectionGlobal] == 0 && c.sections.Lines[core.SectionDirectory] == 0 {
		// 没有实体时缺少全局段不算问题
		diags = nil
	}
	c.global = global
	c = c.with(diags...)

	sections := c.sections

	var (
		g         errgroup.Group
		dirDiags  []core.Diagnostic
		parDiags  []core.Diagnostic
		directory []core.Directory
		params    []core.Parameter
		start     string
		terminate Terminate
	)

	g.Go(func() error {
		start = sections.Start
		return nil
	})
	g.Go(func() error {
		directory, dirDiags = parseDirectory(sections.Directory)
		return nil
	})
	g.Go(func() error {
		params, parDiags = parseParameter(sections.Parameter, sections.ParameterPointers, global)
		return nil
	})
	g.Go(func() error {
		terminate = parseTerminate(sections.Terminate)
		return nil
	})
	_ = g.Wait()

	c.start = start
	c.directory = directory
	c.parameters = params
	c.terminate = terminate

	return c.with(dirDiags...).with(parDiags...)
}

// assemble 核对结束段计数后按位置合并目录与参数
func (c DecodeContext) assemble() (DecodeContext, error) {
	diags, err := c.terminate.check(c.sections.Lines, len(c.directory))
	if err != nil {
		return c, err
	}
	c = c.with(diags...)

	records, diags, err := assemble(c.directory, c.parameters, c.opts.debug)
	if err != nil {
		return c, err
	}
	c.records = records

	return c.with(diags...), nil
}
