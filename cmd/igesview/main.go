// Command igesview 查看、渲染、导出 IGES 文件。
package main

import (
	"fmt"
	"os"

	"github.com/zooyer/golib/xos"
)

func main() {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}

	// 双击或拖放启动时保留窗口
	if pause, _ := root.PersistentFlags().GetBool("pause"); pause {
		xos.PauseExit()
	}
	if err != nil {
		os.Exit(1)
	}
}
