// Command photobreak is the desktop game: drop a photo on the window and
// smash it brick by brick.
package main

import (
	"flag"
	"os"

	"fortio.org/cli"
	"fortio.org/log"

	"photobreak/internal/app"
	"photobreak/internal/desktop"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	photoFlag := flag.String("photo", "", "Image `file` to break (png, jpeg, gif, bmp, webp)")
	configFlag := flag.String("config", "", "YAML tuning `file`")
	seedFlag := flag.Uint64("seed", 0, "Random number generator `seed`, default (0) is "+app.SeedEnv+" or time based")
	muteFlag := flag.Bool("mute", false, "Start with sound muted")
	demoFlag := flag.Bool("demo", false, "Use a generated picture instead of a photo")
	volumeFlag := flag.Float64("volume", app.DefaultVolume, "Sound `volume` between 0 (silent) and 1")
	cli.Main()
	err := desktop.Run(app.Options{
		PhotoPath:  *photoFlag,
		ConfigPath: *configFlag,
		Seed:       *seedFlag,
		Mute:       *muteFlag,
		Demo:       *demoFlag,
		Volume:     *volumeFlag,
	})
	if err != nil {
		return log.FErrf("photobreak: %v", err)
	}
	return 0
}
