// Plays a walkthrough script in the terminal, for checking a custom script
// before pointing the dashboard at it.
package main

import (
	"log"
	"os"
	"time"

	"github.com/llehouerou/rentflow/internal/demo"
)

func main() {
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	script, err := demo.LoadOrBuiltin(path)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}
	play(script, log.Default())
}

// play runs script to completion, logging each finished step.
func play(script *demo.Script, logger *log.Logger) {
	logger.Printf("%s (%s): %d steps, %s", script.Title, script.Source, len(script.Steps), script.TotalDuration())

	// Nothing to play: the player stays idle and never reports.
	if len(script.Steps) == 0 {
		logComplete(script, logger)
		return
	}

	player := demo.NewPlayer(script)
	defer player.Close()
	sub := player.Subscribe()

	start := time.Now()
	player.Play()

	for {
		select {
		case snap := <-sub.Changed:
			if snap.Index > 0 && snap.Index <= len(script.Steps) {
				step := script.Steps[snap.Index-1]
				logger.Printf("[%d/%d] %s done after %s", snap.Index, snap.Total, step.Title,
					time.Since(start).Round(time.Millisecond))
				// The last card is the result of the step that just finished.
				cards := demo.Preview(script, snap)
				for _, line := range cards[len(cards)-1].Lines {
					logger.Printf("    %s", line)
				}
			}
			if snap.Complete {
				logComplete(script, logger)
				return
			}
		case <-sub.Done:
			return
		}
	}
}

func logComplete(script *demo.Script, logger *log.Logger) {
	logger.Println(script.CompleteTitle)
	for _, m := range script.Metrics {
		logger.Printf("  %s: %s %s", m.Label, m.Value, m.Note)
	}
}
