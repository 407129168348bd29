// This file is part of Marquee.
//
// Marquee is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Marquee is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Marquee.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/marquee/catalog"
	"github.com/jetsetilly/marquee/config"
	"github.com/jetsetilly/marquee/frontend"
	"github.com/jetsetilly/marquee/gui"
	"github.com/jetsetilly/marquee/gui/sdlcarousel"
	"github.com/jetsetilly/marquee/gui/termcarousel"
	"github.com/jetsetilly/marquee/launcher"
	"github.com/jetsetilly/marquee/logger"
	"github.com/jetsetilly/marquee/modalflag"
	"github.com/jetsetilly/marquee/paths"
	"github.com/jetsetilly/marquee/performance"
	"github.com/jetsetilly/marquee/prefs"
	"github.com/jetsetilly/marquee/statsview"
	"github.com/jetsetilly/marquee/version"
)

// exit values
const (
	exitSelected = 0
	exitEscaped  = 1
	exitArgs     = 10
	exitFailure  = 20
)

// the number of log entries printed when the program ends with an error
const logTail = 20

const defaultConfig = "carousel.yaml"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window creation and event handling to occur
// on the main thread.
type mainSync struct {
	state chan stateRequest

	// functions sent on the service channel are run on the main thread. the
	// result is returned on the serviceErr channel
	service    chan func() error
	serviceErr chan error
}

// run function on the main thread and wait for the result.
func (sync *mainSync) run(f func() error) error {
	sync.service <- f
	return <-sync.serviceErr
}

// #mainthread
func main() {
	sync := &mainSync{
		state:      make(chan stateRequest),
		service:    make(chan func() error),
		serviceErr: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := exitSelected

	// #ctrlc default handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Print("\r")
			exitVal = exitEscaped
			done = true

		case f := <-sync.service:
			sync.serviceErr <- f()

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate program end.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "CHECK", "VERSION")
	md.AdditionalHelp(fmt.Sprintf("%s arcade carousel. default mode is RUN", version.ApplicationName))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: exitArgs}
		return
	}

	var outcome frontend.Outcome

	switch md.Mode() {
	case "RUN":
		outcome, err = runCarousel(md, sync, false)

	case "TERM":
		outcome, err = runCarousel(md, sync, true)

	case "CHECK":
		err = check(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		if isArgsError(err) {
			fmt.Printf("* error in %s mode: %v\n", md, err)
			sync.state <- stateRequest{req: reqQuit, args: exitArgs}
			return
		}

		fmt.Fprintf(os.Stderr, "* error in %s mode: %v\n", md, err)
		logger.Tail(os.Stderr, logTail)
		sync.state <- stateRequest{req: reqQuit, args: exitFailure}
		return
	}

	if outcome == frontend.Escaped {
		sync.state <- stateRequest{req: reqQuit, args: exitEscaped}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// argsError is used for command line problems found after parsing
type argsError struct {
	err error
}

func (e argsError) Error() string {
	return e.err.Error()
}

func isArgsError(err error) bool {
	_, ok := err.(argsError)
	return ok
}

// flags common to all modes that load the configuration
type common struct {
	config  *string
	res     *string
	prefs   *string
	log     *bool
	profile *string
}

func addCommon(md *modalflag.Modes) common {
	return common{
		config:  md.AddString("config", defaultConfig, "configuration file"),
		res:     md.AddString("res", "", "resource directory for images and sounds"),
		prefs:   md.AddString("prefs", "", "override configuration values (eg. \"fps::24; click::false\")"),
		log:     md.AddBool("log", false, "echo log to stderr"),
		profile: md.AddChoice("profile", "none", "write profiling reports", "none", "cpu", "mem", "all"),
	}
}

// load configuration and build the catalog
func (c common) load() (*config.Config, *catalog.Catalog, error) {
	if *c.log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	paths.SetResourceDir(*c.res)
	prefs.SetCommandLine(*c.prefs)

	cfg, err := config.Load(*c.config)
	if err != nil {
		return nil, nil, err
	}
	logger.Logf(logger.Allow, "config", "%s", cfg)

	cat, err := cfg.Catalog()
	if err != nil {
		return nil, nil, err
	}

	return cfg, cat, nil
}

func runCarousel(md *modalflag.Modes, sync *mainSync, term bool) (frontend.Outcome, error) {
	md.NewMode()

	flags := addCommon(md)
	state := md.AddString("state", paths.DefaultStatePath, "file used to remember the selected card")
	launch := md.AddChoice("launch", "print", "launch method", "print", "exec")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	var windowed *bool
	if !term {
		windowed = md.AddBool("windowed", false, "run in a window rather than full screen")
	}

	p, err := md.Parse()
	if err != nil {
		return frontend.Escaped, argsError{err: err}
	}
	if p != modalflag.ParseContinue {
		return frontend.Launched, nil
	}
	if len(md.RemainingArgs()) > 0 {
		return frontend.Escaped, argsError{err: fmt.Errorf("unexpected arguments: %v", md.RemainingArgs())}
	}

	cfg, cat, err := flags.load()
	if err != nil {
		return frontend.Escaped, err
	}

	if *stats {
		stop := statsview.Launch()
		defer stop()
	}

	l, err := launcher.New(*launch, os.Stdout)
	if err != nil {
		return frontend.Escaped, argsError{err: err}
	}

	// the carousel ends on an interrupt signal. the main thread is busy
	// running the carousel so the signal is handled by the context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var outcome frontend.Outcome

	carousel := func() error {
		display, err := newDisplay(term, windowed)
		if err != nil {
			return err
		}
		defer display.Destroy()

		fe, err := frontend.NewFrontend(cfg, cat, display, frontend.Options{
			StatePath: *state,
			Launcher:  l,
		})
		if err != nil {
			return err
		}
		defer fe.Close()

		outcome, err = fe.Run(ctx)
		return err
	}

	err = sync.run(func() error {
		return performance.RunProfiler(performance.ParseProfile(*flags.profile), "marquee", carousel)
	})

	return outcome, err
}

// newDisplay must be called from the main thread.
func newDisplay(term bool, windowed *bool) (gui.Display, error) {
	if term {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		tc, err := termcarousel.NewTermCarousel(screen, true)
		if err != nil {
			return nil, err
		}
		return tc, nil
	}

	sc, err := sdlcarousel.NewSdlCarousel(*windowed)
	if err != nil {
		return nil, err
	}
	return sc, nil
}

func check(md *modalflag.Modes) error {
	md.NewMode()

	flags := addCommon(md)
	viz := md.AddBool("memviz", false, "write graph of the catalog in DOT format")

	p, err := md.Parse()
	if err != nil {
		return argsError{err: err}
	}
	if p != modalflag.ParseContinue {
		return nil
	}
	if len(md.RemainingArgs()) > 0 {
		return argsError{err: fmt.Errorf("unexpected arguments: %v", md.RemainingArgs())}
	}

	return performance.RunProfiler(performance.ParseProfile(*flags.profile), "marquee_check", func() error {
		cfg, cat, err := flags.load()
		if err != nil {
			return err
		}

		describe(md.Output, cfg, cat)

		if *viz {
			fn := paths.UniqueFilename("catalog", "", "dot")
			f, err := os.Create(fn)
			if err != nil {
				return err
			}
			defer f.Close()
			memviz.Map(f, cat)
			fmt.Fprintf(md.Output, "catalog graph written to %s\n", fn)
		}

		if unused := prefs.UnusedCommandLine(); unused != "" {
			fmt.Fprintf(md.Output, "unused prefs: %s\n", unused)
		}

		return nil
	})
}

func describe(w io.Writer, cfg *config.Config, cat *catalog.Catalog) {
	fmt.Fprintln(w, cfg)
	fmt.Fprintf(w, "%d slots (%d visible)\n", cfg.Slots(), cfg.NumSlots.Value())
	for _, e := range cfg.Emulators {
		fmt.Fprintf(w, "emulator %s: %s\n", e.Name, e.Cmd)
	}
	cat.Describe(w)
}
