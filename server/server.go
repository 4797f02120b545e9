// Package server contains camera control server.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-home-io/camera/plugins/common"
	"github.com/go-home-io/camera/providers"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const (
	// Logger system representation.
	logSystem = "server"
	// Graceful shutdown timeout.
	shutdownTimeout = 5 * time.Second
)

// ConstructServer has data required for a new control server.
type ConstructServer struct {
	Logger    common.ILoggerProvider
	Camera    providers.ICameraProvider
	FanOut    providers.IEventFanOutProvider
	Preview   providers.IPreviewProvider
	Validator providers.IValidatorProvider
	Port      int
}

// CameraServer describes HTTP control surface of the camera.
type CameraServer struct {
	sync.Mutex

	Logger common.ILoggerProvider

	camera     providers.ICameraProvider
	fanOut     providers.IEventFanOutProvider
	preview    providers.IPreviewProvider
	validator  providers.IValidatorProvider
	port       int
	wsSettings websocket.Upgrader
	httpServer *http.Server
	address    string
}

// NewServer constructs a new control server.
func NewServer(ctor *ConstructServer) *CameraServer {
	return &CameraServer{
		Logger:    ctor.Logger,
		camera:    ctor.Camera,
		fanOut:    ctor.FanOut,
		preview:   ctor.Preview,
		validator: ctor.Validator,
		port:      ctor.Port,
		wsSettings: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Start launches control server.
func (s *CameraServer) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		s.Logger.Error("Failed to start server", err, common.LogSystemToken, logSystem)
		return err
	}

	s.Lock()
	s.address = listener.Addr().String()
	s.httpServer = &http.Server{Handler: s.Router()}
	srv := s.httpServer
	s.Unlock()

	go func() {
		err := srv.Serve(listener)
		if err != nil && err != http.ErrServerClosed {
			s.Logger.Error("Server stopped", err, common.LogSystemToken, logSystem)
		}
	}()

	s.Logger.Info(fmt.Sprintf("Started server on %s", s.address), common.LogSystemToken, logSystem)
	return nil
}

// Stop shuts the server down.
func (s *CameraServer) Stop() {
	s.Lock()
	srv := s.httpServer
	s.httpServer = nil
	s.Unlock()

	if nil == srv {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Logger.Error("Failed to stop server", err, common.LogSystemToken, logSystem)
	}
}

// Address returns listening address.
func (s *CameraServer) Address() string {
	s.Lock()
	defer s.Unlock()
	return s.address
}

// Router returns server's HTTP handler.
func (s *CameraServer) Router() http.Handler {
	router := mux.NewRouter()
	s.registerAPI(router)
	return handlers.RecoveryHandler(handlers.RecoveryLogger(&recoveryLogger{logger: s.Logger}))(router)
}

// All API registration.
func (s *CameraServer) registerAPI(router *mux.Router) {
	publicRouter := router.PathPrefix("/pub").Subrouter()
	publicRouter.HandleFunc("/ping", s.ping).Methods(http.MethodGet)

	apiRouter := router.PathPrefix(routeAPI).Subrouter()
	apiRouter.HandleFunc("/capabilities", s.getCapabilities).Methods(http.MethodGet)
	apiRouter.HandleFunc("/state", s.getState).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/settings/{%s}", urlSetting), s.putSetting).Methods(http.MethodPut)
	apiRouter.HandleFunc("/capture/still", s.captureStill).Methods(http.MethodPost)
	apiRouter.HandleFunc(fmt.Sprintf("/video/{%s}", urlAction), s.videoAction).Methods(http.MethodPost)
	apiRouter.HandleFunc("/preview.jpg", s.getPreview).Methods(http.MethodGet)
	apiRouter.HandleFunc("/events", s.handleWS).Methods(http.MethodGet)
	apiRouter.Use(s.logMiddleware)
}

var _ providers.IServerProvider = (*CameraServer)(nil)
