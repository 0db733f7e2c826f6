package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-library-bff/internal/app"
	"github.com/MKhiriev/go-library-bff/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	if err := app.Run(models.ResourceBooks, buildInfo); err != nil {
		fmt.Fprintf(os.Stderr, "books-bff: %v\n", err)
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
