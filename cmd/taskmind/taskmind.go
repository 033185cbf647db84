package main

import (
	"github.com/kiosk404/taskmind/internal/gateway"

	_ "go.uber.org/automaxprocs"
)

func main() {
	gateway.NewApp("taskmind").Run()
}
