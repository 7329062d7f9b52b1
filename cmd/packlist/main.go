package main

import (
	"context"
	"os"

	"github.com/idilsaglam/packlist/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:]))
}
