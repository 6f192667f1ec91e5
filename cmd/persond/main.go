// cmd/persond/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/person-sensor/internal/config"
	"github.com/tamzrod/person-sensor/internal/poller"
	"github.com/tamzrod/person-sensor/internal/publisher"
	"github.com/tamzrod/person-sensor/internal/status"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: persond <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("config validation failed")
	}

	config.Normalize(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Shared broker connection
	// --------------------

	cli, closeCli, err := publisher.BuildClient(cfg.Persond.MQTT)
	if err != nil {
		log.Fatal().Err(err).Str("broker", cfg.Persond.MQTT.Broker).Msg("mqtt connect failed")
	}
	defer closeCli()

	// --------------------
	// Build per-sensor pipelines
	// --------------------

	for _, sc := range cfg.Persond.Sensors {

		// ---- poller ----
		p, closeConn, err := poller.Build(sc)
		if err != nil {
			log.Fatal().Err(err).Str("sensor", sc.ID).Msg("poller build failed")
		}
		defer closeConn()

		// ---- delivery plan ----
		plan, err := publisher.BuildPlan(sc, cfg.Persond.MQTT)
		if err != nil {
			log.Fatal().Err(err).Str("sensor", sc.ID).Msg("publisher plan failed")
		}

		pub := publisher.New(plan, cli)

		// Status publisher (optional per sensor)
		statusPub, statusEnabled := publisher.NewStatusPublisher(plan, cli)

		// ---- channel between poller and publisher ----
		out := make(chan poller.PollResult)

		// Orchestrator (runner-owned state + 1Hz seconds ticker)
		go orchestrate(ctx, log, sc.ID, out, pub, statusPub, statusEnabled)

		// poller producer
		go p.Run(ctx, out)

		log.Info().Str("sensor", sc.ID).Str("bus", sc.Bus.Kind).Msg("pipeline started")
	}

	<-ctx.Done()
	log.Info().Msg("shutting down")
}

// orchestrate owns the per-sensor status snapshot: delivers poll results,
// tracks health transitions, and ticks seconds-in-error at 1Hz.
func orchestrate(
	ctx context.Context,
	log zerolog.Logger,
	sensorID string,
	out <-chan poller.PollResult,
	pub publisher.Publisher,
	statusPub publisher.StatusPublisher,
	statusEnabled bool,
) {
	var snap status.Snapshot
	snap.Health = status.HealthUnknown

	secTicker := time.NewTicker(time.Second)
	defer secTicker.Stop()

	// Retained assert on start so subscribers see the boot state.
	if statusEnabled {
		if err := statusPub.PublishStatus(snap); err != nil {
			log.Error().Err(err).Str("sensor", sensorID).Msg("status publish failed on start")
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case res := <-out:
			// --- data delivery ---
			if err := pub.Publish(res); err != nil {
				log.Error().Err(err).Str("sensor", sensorID).Msg("publish failed")
			}

			// --- status update (sensor-level truth) ---
			if !statusEnabled {
				continue
			}

			if res.Err == nil {
				// Recovery / OK
				if snap.Health == status.HealthError {
					log.Info().Str("sensor", sensorID).Msg("sensor recovered")
				}
				snap.Health = status.HealthOK
				snap.LastErrorCode = status.CodeNone
				snap.SecondsInError = 0
			} else {
				if snap.Health != status.HealthError {
					log.Warn().Err(res.Err).Str("sensor", sensorID).Msg("poll failed")
				}
				snap.Health = status.HealthError
				snap.LastErrorCode = status.CodeFor(res.Err)
				// seconds_in_error increments on the 1Hz ticker only.
			}

			if err := statusPub.PublishStatus(snap); err != nil {
				log.Error().Err(err).Str("sensor", sensorID).Msg("status publish failed")
			}

		case <-secTicker.C:
			if !statusEnabled {
				continue
			}

			// Tick 1Hz while not OK.
			if snap.Health != status.HealthOK && snap.SecondsInError < status.SecondsInErrorMax {
				snap.SecondsInError++
				if err := statusPub.PublishStatus(snap); err != nil {
					log.Error().Err(err).Str("sensor", sensorID).Msg("status seconds tick publish failed")
				}
			}
		}
	}
}
