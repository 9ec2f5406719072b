package main

import (
	"os"

	"github.com/vercel/pmdetect/internal/cmd"
)

var version = "dev"

func main() {
	os.Exit(cmd.Execute(version))
}
