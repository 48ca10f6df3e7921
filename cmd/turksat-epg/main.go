package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Kopaev/Turksat-42e-RUS/internal/di"
	"github.com/Kopaev/Turksat-42e-RUS/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the yaml config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "mirror logs to the console")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "turksat-epg: %s\n", err)
		os.Exit(1)
	}
}
