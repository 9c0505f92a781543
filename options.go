package iges

import "runtime"

type options struct {
	debug   bool
	workers int
}

func defaultOptions() options {
	return options{workers: runtime.GOMAXPROCS(0)}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Option 解码选项
type Option func(*options)

// WithDebug 开启目录指针与参数行的交叉校验。配对仍按位置进行，校验只产生诊断。
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// WithWorkers 图元生成的并发数，小于 1 时按 1 处理
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}
