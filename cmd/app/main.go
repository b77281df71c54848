package main

import (
	"github.com/am1t0/anonymous-meet-vote/internal/app"
	"github.com/am1t0/anonymous-meet-vote/internal/config"
)

func main() {
	app.Go(config.Load())
}
