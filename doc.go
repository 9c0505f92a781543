// Package iges 解码 IGES 交换文件：按列分段，解析各段字段，
// 目录与参数按位置合并为实体记录，再生成点云、折线、曲线图元。
package iges

import (
	"io"
	"os"
	"strings"

	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/scene"
)

type Document struct {
	Start       string            // 开始段，自由文本
	Global      Global            // 全局段
	Directory   []core.Directory  // 目录段，每两行一个条目
	Parameters  []core.Parameter  // 参数段，每条记录对应一个目录条目
	Terminate   Terminate         // 结束段
	Records     []core.Record     // 合并后的实体，顺序即目录顺序
	Diagnostics []core.Diagnostic // 解码过程中的可恢复问题

	opts options
}

// Scene 生成图元，见 Synthesize
func (d *Document) Scene() (*scene.Group, []core.Diagnostic) {
	return Synthesize(d.Records, d.option)
}

func (d *Document) option(o *options) {
	*o = d.opts
}

func Open(filename string, opts ...Option) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file, opts...)
}

// Decode 解码内存中的文件内容
func Decode(text string, opts ...Option) (*Document, error) {
	return Load(strings.NewReader(text), opts...)
}

// Load 读取并解码。只有目录条目数与结束段或参数记录数不一致时返回 core.ErrStructure，
// 其余问题记录在 Diagnostics 中。
func Load(reader io.Reader, opts ...Option) (doc *Document, err error) {
	ctx := DecodeContext{opts: newOptions(opts)}

	if ctx, err = ctx.split(reader); err != nil {
		return nil, err
	}
	ctx = ctx.parseSections()

	if ctx, err = ctx.assemble(); err != nil {
		core.Emit(ctx.diagnostics...)
		return nil, err
	}
	core.Emit(ctx.diagnostics...)

	return &Document{
		Start:       ctx.start,
		Global:      ctx.global,
		Directory:   ctx.directory,
		Parameters:  ctx.parameters,
		Terminate:   ctx.terminate,
		Records:     ctx.records,
		Diagnostics: ctx.Diagnostics(),
		opts:        ctx.opts,
	}, nil
}
