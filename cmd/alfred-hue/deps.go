package main

import "github.com/cristianoliveira/alfred-hue/internal/app"

// servicesFactory builds the collaborators a command needs. Commands close
// what it returns.
type servicesFactory func() (*app.Services, error)

var newServices servicesFactory = app.NewServicesFromConfig
