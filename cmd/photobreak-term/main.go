// Command photobreak-term plays in a terminal with 24-bit colour, two
// pixels per character cell.
package main

import (
	"flag"
	"os"

	"fortio.org/cli"
	"fortio.org/log"
	"github.com/gdamore/tcell/v2"

	"photobreak/internal/app"
	"photobreak/internal/term"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	photoFlag := flag.String("photo", "", "Image `file` to break, default is a generated picture")
	configFlag := flag.String("config", "", "YAML tuning `file`")
	seedFlag := flag.Uint64("seed", 0, "Random number generator `seed`, default (0) is "+app.SeedEnv+" or time based")
	muteFlag := flag.Bool("mute", false, "Start with sound muted")
	volumeFlag := flag.Float64("volume", app.DefaultVolume, "Sound `volume` between 0 (silent) and 1")
	fpsFlag := flag.Float64("fps", 60, "Frames per second")
	cli.Main()

	screen, err := tcell.NewScreen()
	if err != nil {
		return log.FErrf("Error creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		return log.FErrf("Error initializing screen: %v", err)
	}
	defer screen.Fini()
	// Info logs would scribble over the screen.
	prev := log.SetLogLevel(log.Error)
	defer log.SetLogLevel(prev)

	t := term.New(screen)
	a, err := app.New(app.Options{
		PhotoPath:  *photoFlag,
		ConfigPath: *configFlag,
		Seed:       *seedFlag,
		Mute:       *muteFlag,
		Demo:       *photoFlag == "",
		Volume:     *volumeFlag,
	}, t.Input, nil)
	if err != nil {
		screen.Fini()
		return log.FErrf("photobreak: %v", err)
	}
	t.App = a
	t.Run(*fpsFlag)
	return 0
}
