package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1769-performance/logchart/logging"
)

var Version = "0.3.0"

var (
	logFile    = flag.String("debug", "", "Write Debug Logs to file")
	configPath = flag.String("config", "", "Path to YAML config file")
	logName    = flag.String("name", "", "Display name for the log (defaults to the file name)")
)

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	// Anything below here should NOT run if --version was provided.
	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("logchart: Started")

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: logchart [--debug debug.log] [--config config.yaml] [--name label] <file.csv|url>")
		os.Exit(1)
	}

	cfg, err := loadConfigAuto(*configPath)
	if err != nil {
		log.Fatalf("failed to load config %q: %v", *configPath, err)
	}

	desc := descriptorFor(args[0], *logName)

	m := newModel(cfg, desc)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

func loadConfigAuto(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// descriptorFor labels the log: the --name flag wins, otherwise the
// base name of the file or URL path.
func descriptorFor(src, name string) LogDescriptor {
	if name == "" {
		name = filepath.Base(strings.TrimRight(src, "/"))
		if name == "." || name == "" {
			name = src
		}
	}
	return LogDescriptor{Name: name, ContentURL: src}
}
