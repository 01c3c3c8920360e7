package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"Toneline/internal/config"
	"Toneline/internal/wavio"
	"Toneline/pkg/modem"
)

func main() {
	configPath := flag.String("config", "config.yml", "configuration file")
	wavPath := flag.String("wav", "", "render to a WAV file instead of playing")
	flag.Parse()

	message := strings.ToUpper(strings.Join(flag.Args(), " "))
	if message == "" {
		fmt.Println("usage: sender [-config config.yml] [-wav out.wav] MESSAGE")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	modulator, err := modem.NewModulator(cfg.Modem())
	if err != nil {
		fmt.Printf("Invalid protocol configuration: %v\n", err)
		os.Exit(1)
	}
	signal, err := modulator.Modulate(message)
	if err != nil {
		fmt.Printf("Cannot encode %q: %v\n", message, err)
		os.Exit(1)
	}

	if *wavPath != "" {
		if err := wavio.Save(*wavPath, signal, int(cfg.Protocol.SampleRate)); err != nil {
			fmt.Printf("Error writing %s: %v\n", *wavPath, err)
			os.Exit(1)
		}
		fmt.Printf("Rendered %q to %s (%d samples)\n", message, *wavPath, len(signal))
		return
	}

	layer, err := cfg.CreateLayer()
	if err != nil {
		fmt.Printf("Error creating the physical layer: %v\n", err)
		os.Exit(1)
	}

	layer.Open()
	defer layer.Close()

	fmt.Printf("Sending %q\n", message)
	if err := layer.Send(message); err != nil {
		fmt.Printf("Error sending: %v\n", err)
		os.Exit(1)
	}

	playback := time.Duration(float64(len(signal)) / cfg.Protocol.SampleRate * float64(time.Second))
	time.Sleep(playback + 500*time.Millisecond)
	fmt.Println("Done")
}
