// SPDX-License-Identifier: EPL-2.0

// Command untwist inspects, mixes and separates audio files with
// time-frequency masks.
//
// Usage:
//
//	untwist [flags] <command> [args]
//
// Commands:
//
//	info         - Show format, rate, channels and peaks of audio files
//	mix          - Normalize and mix files into one
//	pad          - Add silence before and after a file
//	waveform     - Draw the channels of a file as a PNG
//	spectrogram  - Draw the spectrogram of a file as a PNG
//	mask         - Build a binary or ratio mask and draw it as a PNG
//	separate     - Apply a mask to a mixture and write the estimate
//	play         - Play a file on the default output device
//	record       - Record from the default input device
//
// A .env file in the working directory is loaded first; UNTWIST_CONFIG
// may name a YAML config file there.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/ik5/untwist/cmd/untwist/commands"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: loading .env: %v\n", err)
		os.Exit(1)
	}

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
