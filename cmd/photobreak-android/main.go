//go:build android

// Command photobreak-android is the Android build, packaged with gomobile.
package main

import (
	"photobreak/internal/app"
	"photobreak/internal/mobile"
)

func main() {
	mobile.Run(app.Options{Volume: app.DefaultVolume})
}
