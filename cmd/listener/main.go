package main

import (
	"flag"
	"fmt"
	"os"

	"Toneline/internal/config"
	"Toneline/internal/wavio"
	"Toneline/pkg/async"
	"Toneline/pkg/modem"
)

func main() {
	configPath := flag.String("config", "config.yml", "configuration file")
	wavPath := flag.String("wav", "", "decode a WAV file instead of listening")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *wavPath != "" {
		decodeFile(cfg, *wavPath)
		return
	}

	layer, err := cfg.CreateLayer()
	if err != nil {
		fmt.Printf("Error creating the physical layer: %v\n", err)
		os.Exit(1)
	}

	layer.Open()
	defer layer.Close()

	go func() {
		for e := range layer.Events() {
			report(e)
		}
	}()

	fmt.Println("Listening, press Enter to stop")
	<-async.EnterKey()
}

func decodeFile(cfg *config.Config, path string) {
	samples, sampleRate, err := wavio.Load(path)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", path, err)
		os.Exit(1)
	}
	if float64(sampleRate) != cfg.Protocol.SampleRate {
		fmt.Printf("Using the file's sample rate %d Hz\n", sampleRate)
		cfg.Protocol.SampleRate = float64(sampleRate)
	}

	demodulator, err := modem.NewDemodulator(cfg.Modem())
	if err != nil {
		fmt.Printf("Invalid protocol configuration: %v\n", err)
		os.Exit(1)
	}

	for _, e := range demodulator.Push(samples) {
		report(e)
	}
}

func report(e modem.Event) {
	switch e := e.(type) {
	case modem.StateChanged:
		fmt.Printf("\n[%v -> %v]\n", e.From, e.To)
	case modem.PartialSymbol:
		ch := e.Symbol.Char
		if ch == 0 {
			ch = '?'
		}
		if e.Symbol.Confidence == modem.Uncertain {
			fmt.Printf("%c?", ch)
		} else {
			fmt.Printf("%c", ch)
		}
	case modem.MessageComplete:
		if e.ChecksumValid {
			fmt.Printf("\nReceived: %q\n", e.Text)
		} else {
			fmt.Printf("\nReceived: %q [CHECKSUM MISMATCH]\n", e.Text)
		}
	}
}
