package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-home-io/camera/plugins/common"
	"github.com/go-home-io/camera/providers"
	"github.com/go-home-io/camera/server"
	"github.com/go-home-io/camera/settings"
	"github.com/go-home-io/camera/simulator"
	"github.com/go-home-io/camera/systems"
	manager "github.com/go-home-io/camera/systems/camera"
	"github.com/go-home-io/camera/systems/fanout"
	"github.com/go-home-io/camera/systems/preview"
	"github.com/jessevdk/go-flags"
)

func main() {
	options := &settings.StartUpOptions{Output: os.Stdout}
	_, err := flags.Parse(options)
	if err != nil {
		os.Exit(1)
	}

	s, err := settings.Load(options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %s\n", err.Error())
		os.Exit(1)
	}

	log := s.SystemLogger()
	log.Info("Starting camera", common.LogSessionToken, s.Session())

	fanOut := fanout.NewFanOut(&fanout.ConstructFanOut{
		Logger: s.PluginLogger(systems.SysEvents.String(), ""),
		Buffer: s.EventsSettings().SubscriberBuffer,
	})
	previewSettings := s.PreviewSettings()
	previewProvider := preview.NewProcessor(&preview.ConstructProcessor{
		Logger:   s.PluginLogger(systems.SysPreview.String(), ""),
		Width:    previewSettings.Width,
		Quality:  int(previewSettings.Quality),
		Distance: previewSettings.Distance,
	})

	backendSettings := s.BackendSettings()
	cam := manager.NewManager(&manager.ConstructManager{
		Logger:     s.PluginLogger(systems.SysCamera.String(), backendSettings.Provider),
		FanOut:     fanOut,
		Preview:    previewProvider,
		Cron:       s.Cron(),
		Session:    s.Session(),
		QueueSize:  s.EventsSettings().QueueSize,
		PendingTTL: s.CaptureSettings().PendingTTL,
	})

	backend := simulator.NewBackend(&simulator.ConstructSimulator{OutputDir: backendSettings.OutputDir})
	if err := cam.Attach(backend, s.CapabilitiesOverride()); err != nil {
		log.Fatal("Failed to attach camera backend", err, common.LogBackendToken, backendSettings.Provider)
	}

	var srv providers.IServerProvider
	if !s.ServerSettings().Disabled {
		srv = server.NewServer(&server.ConstructServer{
			Logger:    s.PluginLogger(systems.SysServer.String(), ""),
			Camera:    cam,
			FanOut:    fanOut,
			Preview:   previewProvider,
			Validator: s.Validator(),
			Port:      s.ServerSettings().Port,
		})

		if err := srv.Start(); err != nil {
			log.Fatal("Failed to start control server", err)
		}
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("Received stop command, exiting")
	if nil != srv {
		srv.Stop()
	}

	cam.Close()
	s.Cron().Stop()
	log.Flush()
}
