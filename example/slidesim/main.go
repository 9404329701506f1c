package main

import (
	"flag"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/gopxl/beep/speaker"
	"github.com/oomph-ac/slide/audio"
	"github.com/oomph-ac/slide/game"
	"github.com/oomph-ac/slide/player"
	"github.com/oomph-ac/slide/settings"
	"github.com/sirupsen/logrus"
)

// The following program runs scripted characters over a small course of ramps and logs
// their slides.
func main() {
	configPath := flag.String("config", "slidesim.toml", "path to a TOML or YAML settings file")
	ticks := flag.Int("ticks", 10*game.DefaultTickRate, "amount of ticks to simulate")
	realtime := flag.Bool("realtime", false, "run ticks at the configured tick rate")
	withSpeaker := flag.Bool("speaker", false, "play slide sounds on the default audio device")
	flag.Parse()

	conf, err := settings.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log := newLogger(conf)
	if conf.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         conf.Sentry.DSN,
			Environment: conf.Sentry.Environment,
		}); err != nil {
			log.Errorf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(time.Second * 2)
	}

	if conf.Stats.Enabled || os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(conf.Stats.Addr))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	sounds := audio.NewSoundManager()
	defer sounds.Cleanup()
	if *withSpeaker {
		if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/10)); err != nil {
			log.Warnf("audio unavailable: %v", err)
		} else {
			speaker.Play(sounds.Streamer())
			defer speaker.Close()
		}
	}

	m := player.NewManager(log, conf.Workers)
	defer m.Close()

	course := newCourse()
	scripts, err := spawn(conf, log, m, course, sounds)
	if err != nil {
		panic(err)
	}

	var ticker *time.Ticker
	if *realtime {
		ticker = time.NewTicker(time.Second / time.Duration(conf.TickRate))
		defer ticker.Stop()
	}

	dt := conf.TickDelta()
	for tick := 0; tick < *ticks; tick++ {
		for _, s := range scripts {
			s.step(tick)
		}
		if err := m.Tick(dt); err != nil {
			log.Errorf("tick %d failed: %v", tick, err)
			break
		}
		if ticker != nil {
			<-ticker.C
		}
	}

	for _, s := range scripts {
		s.summarize()
	}
	log.Infof("simulated %d ticks, %d slide sounds still playing", m.CurrentTick(), sounds.Active())
}

func newLogger(conf settings.Settings) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	if lvl, err := conf.LogLevel(); err == nil {
		log.SetLevel(lvl)
	}
	if conf.Log.File != "" {
		f, err := os.OpenFile(conf.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			panic(err)
		}
		log.SetOutput(f)
	}
	return log
}
