package timeline

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gitfeed/gitfeed.go/db/models"
	"github.com/rs/zerolog"
)

const DefaultPollInterval = 15 * time.Second

// Poller fetches the event feed on a fixed interval and renders each event as
// one line on Out. Fetches are sequential, a slow poll just delays the next
// tick instead of stacking requests. A failed fetch renders an error line and
// the loop keeps going; "no events yet" and "failed to load" are deliberately
// distinct renders.
type Poller struct {
	URL      string
	Interval time.Duration
	Client   *http.Client
	Out      io.Writer
	Logger   zerolog.Logger

	stop chan struct{}
	done chan struct{}
}

// Start begins polling in the background and returns immediately. Use Stop to
// tear the poller down; after Stop returns no further fetches happen.
func (p *Poller) Start() {
	if p.Interval <= 0 {
		p.Interval = DefaultPollInterval
	}
	if p.Client == nil {
		// bounded below the interval so one poll can never overlap the next
		p.Client = &http.Client{Timeout: p.Interval / 2}
	}
	p.stop = make(chan struct{})
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()

		p.poll()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.poll()
			}
		}
	}()
}

func (p *Poller) Stop() {
	close(p.stop)
	<-p.done
}

func (p *Poller) poll() {
	events, err := p.fetch()
	if err != nil {
		p.Logger.Error().Err(err).Msg("failed to fetch events")
		fmt.Fprintln(p.Out, "Failed to load events. Will retry on the next poll.")
		return
	}
	p.render(events)
}

func (p *Poller) fetch() ([]models.Event, error) {
	resp, err := p.Client.Get(p.URL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("event feed returned status %d", resp.StatusCode)
	}

	var events []models.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, err
	}
	return events, nil
}

func (p *Poller) render(events []models.Event) {
	if len(events) == 0 {
		fmt.Fprintln(p.Out, "No events yet...")
		return
	}
	for _, event := range events {
		if line := Format(event); line != "" {
			fmt.Fprintln(p.Out, line)
		}
	}
}
