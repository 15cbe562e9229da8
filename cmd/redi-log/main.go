package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/rediwo/redi-log/modules/log" // Import log module
	"github.com/rediwo/redi/runtime"

	"github.com/rediwo/redi-log/logger"
)

const (
	version = "0.1.0"
	usage   = `RediLog CLI - Leveled logging toolkit

Usage:
  redi-log <command> [flags]

Commands:
  run      Execute a JavaScript file with the redi/log module available
  demo     Emit a round of sample messages at every level
  version  Show version information

Flags:
  --name   Logger name shown in every line (default: redi-log)

  --level  Minimum level: debug|info|warn|error (default: info)
           The LOG_LEVEL environment variable takes precedence;
           a .env file in the working directory is honored.

  --json   Emit line-delimited JSON instead of colored console output

  --count  Number of demo iterations (default: 10)

  --help   Show help message

Examples:
  # Run a JavaScript file that uses require('redi/log')
  redi-log run app.js

  # Console demo with everything visible
  redi-log demo --level=debug

  # JSON demo under a custom name
  redi-log demo --name=payments --json

  # Environment override wins over the flag
  LOG_LEVEL=error redi-log demo --level=debug
`
)

func main() {
	// Define flags
	var (
		name    string
		level   string
		jsonOut bool
		count   int
		help    bool
	)

	flag.StringVar(&name, "name", "redi-log", "Logger name")
	flag.StringVar(&level, "level", "info", "Minimum level: debug|info|warn|error")
	flag.BoolVar(&jsonOut, "json", false, "Emit JSON lines")
	flag.IntVar(&count, "count", 10, "Number of demo iterations")
	flag.BoolVar(&help, "help", false, "Show help message")

	// Custom usage
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	// Check if any arguments provided
	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(0)
	}

	// Get command first
	command := os.Args[1]

	// Handle version command before parsing flags
	if command == "version" {
		fmt.Printf("RediLog CLI v%s\n", version)
		os.Exit(0)
	}

	// Handle help
	if command == "help" || command == "--help" || command == "-h" {
		flag.Usage()
		os.Exit(0)
	}

	// Now parse flags after the command
	flag.CommandLine.Parse(os.Args[2:])

	switch command {
	case "run":
		// For run command, we need the script file as the next argument
		if len(flag.Args()) < 1 {
			log.Fatal("Error: JavaScript file path required\nUsage: redi-log run <script.js>")
		}
		scriptPath := flag.Args()[0]
		runScript(scriptPath)
	case "demo":
		runDemo(name, level, jsonOut, count)
	default:
		log.Fatalf("Unknown command: %s\n\nRun 'redi-log --help' for usage", command)
	}
}

// runDemo builds a logger from flags and environment and emits one round of
// messages per iteration, one call per level.
func runDemo(name, level string, jsonOut bool, count int) {
	// A local .env is loaded first so LOG_LEVEL can come from either place;
	// the environment wins over the --level flag.
	godotenv.Load()
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}

	l, err := logger.New(name, logger.Config{Level: level, JSON: jsonOut})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	for i := 0; i < count; i++ {
		l.Info("iteration %d: everything nominal", i)
		l.Warn("iteration %d: queue depth rising", i)
		err := errors.New("error")
		l.Error(err.Error())
		l.Debug("iteration %d complete", i)
	}
}

func runScript(scriptPath string) {
	// Check if script file exists
	if _, err := os.Stat(scriptPath); os.IsNotExist(err) {
		log.Fatalf("Script file not found: %s", scriptPath)
	}

	// Get absolute path
	absPath, err := filepath.Abs(scriptPath)
	if err != nil {
		log.Fatalf("Failed to get absolute path: %v", err)
	}

	// Create executor
	executor := runtime.NewExecutor()

	// Create runtime config
	config := &runtime.Config{
		ScriptPath: absPath,
		BasePath:   filepath.Dir(absPath),
		Version:    version,
	}

	// Execute the script
	exitCode, err := executor.Execute(config)
	if err != nil {
		log.Fatalf("Script execution failed: %v", err)
	}

	// Exit with the same code as the script
	os.Exit(exitCode)
}
