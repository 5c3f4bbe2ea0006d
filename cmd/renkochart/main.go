package main

import (
	"github.com/jaky1206/renko-chart-demo/pkg/cmd"
)

func main() {
	cmd.Execute()
}
