package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-model-config/cmd/modelconfig/commands"
	"github.com/MKhiriev/go-model-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err := commands.Execute(ctx, info); err != nil {
		stop()
		os.Exit(1)
	}
}
