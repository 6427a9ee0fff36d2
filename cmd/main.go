package main

import (
	"github.com/hngpack/packaging-svc/internal/app"
	"github.com/hngpack/packaging-svc/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
