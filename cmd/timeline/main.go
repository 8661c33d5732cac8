package main

import (
	"flag"
	"os"
	"os/signal"

	"github.com/gitfeed/gitfeed.go/lib/timeline"
	"github.com/rs/zerolog"
)

// Renders the event feed to the terminal, re-fetching on a fixed interval.
func main() {
	url := flag.String("url", "http://localhost:3000/api/events", "event feed URL")
	interval := flag.Duration("interval", timeline.DefaultPollInterval, "poll interval")
	flag.Parse()

	logger := zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()

	poller := &timeline.Poller{
		URL:      *url,
		Interval: *interval,
		Out:      os.Stdout,
		Logger:   logger,
	}
	poller.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	poller.Stop()

	logger.Info().Msg("timeline client stopped")
}
