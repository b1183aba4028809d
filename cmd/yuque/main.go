package main

import (
	"os"

	"github.com/hashicorp-forge/yuque/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
