package main

import (
	"github.com/frenchnum/frenchnum/internal/namer/app"
)

var (
	version string
)

func main() {
	application := app.NewApp(version)
	application.Run()
}
