// Command codefield prompts for fixed-length codes in the terminal and prints
// the completed values as name=value lines.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/codefield/audio"
	"github.com/lixenwraith/codefield/config"
	"github.com/mattn/go-isatty"
)

var (
	configFlag = flag.String("config", "", "Form definition file (.toml, .yaml, .yml); built-in demo when empty")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	watchFlag  = flag.Bool("watch", false, "Reload the form when the config file changes")
	muteFlag   = flag.Bool("mute", false, "Disable audio feedback")
)

// errCanceled reports that the user left without submitting
var errCanceled = errors.New("canceled")

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if !isTerminal(os.Stdin) && !isTerminal(os.Stderr) {
		fmt.Fprintln(os.Stderr, "codefield: a terminal is required")
		os.Exit(2)
	}

	file := config.Default()
	if *configFlag != "" {
		f, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "codefield: %v\n", err)
			os.Exit(2)
		}
		file = f
	}

	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	player := audio.NewPlayer(audioCfg)
	if err := player.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	values, err := runApp(screen, file, player)
	if errors.Is(err, errCanceled) {
		os.Exit(130)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "codefield: %v\n", err)
		os.Exit(1)
	}
	for _, v := range values {
		fmt.Printf("%s=%s\n", v.name, v.value)
	}
}

// runApp owns the screen until the form is submitted or abandoned
func runApp(screen tcell.Screen, file *config.File, player *audio.Player) (values []namedValue, err error) {
	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCODEFIELD CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnablePaste()
	screen.SetStyle(tcell.StyleDefault)

	a := newApp(screen, player)
	if err := a.load(file); err != nil {
		return nil, err
	}

	if *watchFlag && *configFlag != "" {
		w, err := config.NewWatcher(*configFlag, config.DefaultDebounce)
		if err != nil {
			log.Printf("Config watch failed: %v", err)
		} else {
			defer w.Close()
			a.watch(w)
		}
	}

	return a.run()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
