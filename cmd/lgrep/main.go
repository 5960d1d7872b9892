package main

import (
	"os"

	"github.com/apayne/lgrep/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
