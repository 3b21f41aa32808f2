// Command tte animates piped text in the terminal.
//
// Usage:
//
//	ls | tte scattered
//	tte -list
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/profile"
	xterm "golang.org/x/term"

	"github.com/tjwei/terminaltexteffects/canvas"
	"github.com/tjwei/terminaltexteffects/content"
	"github.com/tjwei/terminaltexteffects/effects"
	"github.com/tjwei/terminaltexteffects/engine"
	"github.com/tjwei/terminaltexteffects/graphics"
	"github.com/tjwei/terminaltexteffects/terminal"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	frameRate     = flag.Int("frame-rate", 60, "Frames per second")
	seed          = flag.Int64("seed", 0, "Random seed (0 = time-based)")
	speed         = flag.Float64("speed", 0, "Movement speed in cells/tick (0 = effect default)")
	stopsFlag     = flag.String("gradient-stops", "", "Comma separated colors (6-digit hex or xterm index) overriding the effect gradient")
	stepsFlag     = flag.Int("gradient-steps", 12, "Interpolation steps between gradient stops")
	quantize      = flag.Bool("quantize", false, "Quantize all colors to the xterm-256 palette")
	profileFlag   = flag.String("profile", "", "Write a profile: cpu or mem")
	listFlag      = flag.Bool("list", false, "List available effects")
)

func main() {
	// Panic recovery: restore the terminal before anything else so the
	// stack trace is readable.
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "tte crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if *listFlag {
		fmt.Println(strings.Join(effects.Names(), "\n"))
		return
	}

	name := flag.Arg(0)
	if name == "" {
		name = "expand"
	}
	builder, err := effects.Lookup(name)
	if err != nil {
		fatal(err)
	}

	if xterm.IsTerminal(int(os.Stdin.Fd())) {
		fatal(fmt.Errorf("no input: pipe text on stdin, e.g. `ls | tte %s`", name))
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal(fmt.Errorf("read stdin: %w", err))
	}
	if len(data) == 0 {
		return
	}

	switch *profileFlag {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		fatal(fmt.Errorf("unknown profile mode %q", *profileFlag))
	}

	opts := effects.Options{Speed: *speed, Quantize: *quantize}
	if *stopsFlag != "" {
		stops, err := parseStops(*stopsFlag, *stepsFlag)
		if err != nil {
			fatal(err)
		}
		opts.Stops = stops
	}

	var colorMode terminal.ColorMode
	switch *colorModeFlag {
	case "256":
		colorMode = terminal.ColorMode256
	case "truecolor", "true", "24bit":
		colorMode = terminal.ColorModeTrueColor
	default:
		colorMode = terminal.DetectColorMode()
	}

	if *frameRate < 1 {
		*frameRate = 60
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	session := terminal.NewSession()
	if err := session.Open(); err != nil {
		fatal(err)
	}

	// From here on, errors must restore the terminal before printing.
	exit := func(err error) {
		session.Close()
		if err != nil {
			fatal(err)
		}
		os.Exit(0)
	}

	termW, termH := session.Size()
	txt, err := content.Layout(string(data), termW)
	if err != nil {
		exit(err)
	}
	clipHeight(txt, termH)

	cv, err := canvas.New(txt.Width, txt.Height, colorMode)
	if err != nil {
		exit(err)
	}

	def, err := builder(txt, rng, opts)
	if err != nil {
		exit(err)
	}

	sched, err := engine.New(engine.Config{
		Characters: def.Characters,
		Canvas:     cv,
		Output:     session,
		Interval:   time.Second / time.Duration(*frameRate),
		Admit:      def.Admission,
	})
	if err != nil {
		exit(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := sched.Run(ctx)
	stop()
	if runErr == nil {
		// Let the finished frame linger briefly before the alternate screen
		// is torn down.
		time.Sleep(time.Second)
	}
	exit(nil)
}

// clipHeight drops glyphs below the visible terminal area.
func clipHeight(txt *content.Text, maxHeight int) {
	if maxHeight <= 0 || txt.Height <= maxHeight {
		return
	}
	kept := txt.Glyphs[:0]
	for _, g := range txt.Glyphs {
		if g.Coord.Row < maxHeight {
			kept = append(kept, g)
		}
	}
	txt.Glyphs = kept
	txt.Height = maxHeight
}

// parseStops converts a comma separated color list into gradient stops, the
// final stop dwelling a single step on its color.
func parseStops(list string, steps int) ([]graphics.Stop, error) {
	if steps < 1 {
		steps = 1
	}
	parts := strings.Split(list, ",")
	stops := make([]graphics.Stop, 0, len(parts))
	for i, p := range parts {
		c, err := graphics.ParseColor(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		n := steps
		if i == len(parts)-1 {
			n = 1
		}
		stops = append(stops, graphics.Stop{Color: c, Steps: n})
	}
	return stops, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "tte: %v\n", err)
	os.Exit(1)
}
