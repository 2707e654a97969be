package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "Path to config file (default: discovered, else environment)")
	refresh := flag.Duration("refresh", 5*time.Minute, "Backend discovery interval (0 disables)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("arrmated %s\n", version)
		os.Exit(0)
	}

	if err := runServer(*configPath, *refresh); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
