package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saressalo/chandiff/logging"
	"github.com/saressalo/chandiff/recording"
)

var Version = "dev"

var (
	logFile    = flag.String("debug", "", "Write Debug Logs to file")
	sampleSpan = flag.Int("samples", 10000, "samples shown per time-series window")
	specBins   = flag.Int("bins", 50, "frequency bins shown per spectrum window")
	screenRows = flag.Int("rows", 5, "channel rows shown per screen")
	sampleRate = flag.Float64("rate", 256, "sampling rate in Hz, used when the file carries none")
)

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.Setup(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("chandiff: Started")

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: chandiff [--debug debug.log] <file.csv|file.json> [more recordings...]")
		os.Exit(1)
	}

	recs := make([]*recording.Recording, 0, len(args))
	for _, path := range args {
		rec, err := recording.Load(path, *sampleRate)
		if err != nil {
			log.Fatalf("failed to load %q: %v", path, err)
		}
		recs = append(recs, rec)
	}

	m, err := newModel(recs, appConfig{
		timeWindow: *sampleSpan,
		specWindow: *specBins,
		windowRows: *screenRows,
	})
	if err != nil {
		log.Fatalf("failed to build view: %v", err)
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}
