// Command ballistic samples the drag-free trajectory of a projectile and
// renders it as JSON, a PNG plot, an animated GIF, a terminal chart or a live
// terminal animation.
//
//	ballistic --speed 100 --angle 45 --gravity 10 --step 0.1 --summary --preview
//	ballistic --plot projectile.png --gif ballistic_motion.gif
//	ballistic run input.json
//	ballistic play --speed 30 --angle 60
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("ballistic failed", "error", err)
		os.Exit(1)
	}
}
