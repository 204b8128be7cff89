package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/warrenfall/audio"
	"github.com/lixenwraith/warrenfall/config"
	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/event"
	"github.com/lixenwraith/warrenfall/grid"
	"github.com/lixenwraith/warrenfall/input"
	"github.com/lixenwraith/warrenfall/parameter"
	"github.com/lixenwraith/warrenfall/render"
	"github.com/lixenwraith/warrenfall/system"
)

var (
	seedFlag    = flag.Int64("seed", 0, "map seed, 0 picks one from the clock")
	configFlag  = flag.String("config", "warrenfall.toml", "path to the TOML settings file")
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
	noAudioFlag = flag.Bool("no-audio", false, "disable sound")
	logFileFlag = flag.String("log-file", "", "log file path")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Flags override the file only when actually set
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "no-audio":
			cfg.NoAudio = *noAudioFlag
		case "log-file":
			cfg.LogFile = *logFileFlag
		}
	})

	setupLogging(cfg)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	// Restore the terminal on both clean exit and panic, and keep the
	// crash visible after the restore
	defer func() {
		screen.Fini()
		if r := recover(); r != nil {
			logrus.Errorf("crash: %v", r)
			fmt.Fprintf(os.Stderr, "warrenfall crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	screen.EnableMouse()

	player, err := audio.NewPlayer(cfg.NoAudio)
	if err != nil {
		// Non-fatal, the game runs without sound
		logrus.Warnf("audio init failed: %v (continuing without audio)", err)
	}
	defer player.Close()

	ctx := newSession(cfg.Seed)
	renderer := render.New(screen)
	handler := input.NewHandler(renderer.Camera(), cfg.Keys)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch handler.HandleEvent(ev) {
			case input.ActionQuit:
				logrus.Infof("quit, final score %d", ctx.Score)
				return
			case input.ActionRestart:
				if ctx.GameOver {
					ctx = newSession(cfg.Seed)
				}
			case input.ActionResize:
				screen.Sync()
				renderer.Resize()
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last)
			last = now
			if dt > parameter.MaxFrameDelta {
				dt = parameter.MaxFrameDelta
			}

			ctx.Intent = handler.Intent(now)
			ctx.Step(dt)

			for _, cue := range ctx.Cues {
				player.Cue(cue.Type)
				if cue.Type == event.EventGameOver {
					logrus.Infof("game over, score %d", ctx.Score)
				}
			}

			renderer.Frame(ctx)
		}
	}
}

// newSession builds a fresh game context with the full system pipeline
func newSession(seed int64) *engine.GameContext {
	ctx := engine.NewGameContext(seed)

	ctx.World.AddSystem(system.NewCooldownSystem(ctx))
	ctx.World.AddSystem(system.NewPlayerSystem(ctx))
	ctx.World.AddSystem(system.NewBehaviorSystem(ctx))
	ctx.World.AddSystem(system.NewKnockbackSystem(ctx))
	ctx.World.AddSystem(system.NewProjectileSystem(ctx))
	ctx.World.AddSystem(system.NewCombatSystem(ctx))
	ctx.World.AddSystem(system.NewDeathSystem(ctx))
	ctx.World.AddSystem(system.NewScoreSystem(ctx))
	ctx.World.AddSystem(system.NewSpawnSystem(ctx))

	logrus.Infof("session started, seed %d", ctx.Seed)
	logrus.Debugf("cavern %dx%d, %d foreground tiles, %d floor tiles",
		ctx.Grid.Width(), ctx.Grid.Height(),
		ctx.Grid.Count(grid.PlaneForeground), ctx.Grid.Count(grid.PlaneBackground))
	return ctx
}

// setupLogging routes the standard logger into the rotating file, or
// discards it when no file is configured
func setupLogging(cfg config.Config) {
	if cfg.LogFile == "" {
		logrus.SetOutput(io.Discard)
		return
	}
	logrus.SetOutput(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    5,
		MaxBackups: 2,
		MaxAge:     14,
	})
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
