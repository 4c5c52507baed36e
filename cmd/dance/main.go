package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nixpig/dance/internal/cli"
	"github.com/nixpig/dance/internal/logging"
	"go.uber.org/zap"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		var w io.Writer = os.Stderr
		if logw, lerr := logging.NewErrorWriter(zap.L()); lerr == nil {
			w = io.MultiWriter(os.Stderr, logw)
		}

		w.Write(fmt.Appendf(nil, "failed to execute: %s\n", err))
		_ = zap.L().Sync()
		os.Exit(1)
	}
}
