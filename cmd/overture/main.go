package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"overture/internal/lsp"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	logDir := flag.String("logdir", filepath.Join(os.TempDir(), "overture"),
		"directory for the server log file")
	flag.Parse()

	commonlog.Configure(1, nil)

	if err := os.MkdirAll(*logDir, 0755); err != nil {
		log.Fatalf("Failed to create log directory %s: %v", *logDir, err)
	}
	logFile, err := os.OpenFile(
		filepath.Join(*logDir, "overture.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()

	// Stdout carries the protocol, so logging goes to stderr and the file.
	log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Println("Starting Overture LSP server...")

	server, err := lsp.NewServer()
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	if err := server.RunStdio(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
