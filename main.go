package main

import (
	"fmt"
	"os"

	"github.com/martijn/inkwell/internal/cli"
)

//	@title			Inkwell API
//	@version		1.0
//	@description	Backend for a personal blogging application.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
