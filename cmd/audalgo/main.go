// SPDX-License-Identifier: EPL-2.0

// Command audalgo inspects audio files, reorders their channels and removes
// the echo of a loudspeaker signal from a microphone recording.
//
//	audalgo info song.ogg
//	audalgo remap -map fl,fr,fc,lfe,rl,rr song.ogg song.wav
//	audalgo aec -length 64ms -mu 0.005 mic.wav speaker.flac clean.wav
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

const usage = `usage: audalgo <command> [flags] <args>

commands:
  info  <file>                 print rate, channel map and encoding
  remap [flags] <in> <out>     reorder channels into a new layout
  aec   [flags] <mic> <ref> <out>
                               cancel the echo of ref in mic

Inputs: wav, aif, aiff, flac, mp3, ogg. Outputs: wav, aif, aiff or - for a
16-bit WAV on stdout. Output files carry no channel mask: a remapped layout
reads back as the default order for its channel count. Run
"audalgo <command> -h" for the flags.
`

var errUsage = errors.New("invalid usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("audalgo: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		log.Fatal(err)
	}
}

// run executes one subcommand. Output files named "-" go to stdout.
func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "info":
		return runInfo(rest, stdout)
	case "remap":
		return runRemap(rest, stdout)
	case "aec":
		return runAEC(rest, stdout)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// unitLogger is where processing units report configuration changes.
func unitLogger(verbose bool) *log.Logger {
	if verbose {
		return log.New(os.Stderr, "audalgo: ", 0)
	}
	return log.New(io.Discard, "", 0)
}
