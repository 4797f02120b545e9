// Package camera contains camera configuration state manager.
package camera

import (
	"sync"
	"time"

	"github.com/docker/docker/pkg/namesgenerator"
	"github.com/go-home-io/camera/plugins/bus"
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/plugins/common"
	"github.com/go-home-io/camera/providers"
	"github.com/go-home-io/camera/systems/logger"
	"github.com/go-home-io/camera/utils"
	"github.com/patrickmn/go-cache"
)

const (
	// Logs representation.
	logSystem = "camera"
	// Default pending capture expiration.
	defaultPendingTTL = 5 * time.Minute
	// Default bus messages queue size.
	defaultQueueSize = 64
	// Pending captures sweep schedule.
	pendingSweepSpec = "@every 1m"
)

// ConstructManager has data required for a new camera manager.
type ConstructManager struct {
	Logger     common.ILoggerProvider
	FanOut     providers.IEventFanOutProvider
	Preview    providers.IPreviewProvider
	Cron       providers.ICronProvider
	Session    string
	QueueSize  int
	PendingTTL time.Duration
}

// Attached backend session.
type session struct {
	name     string
	backend  camera.IBackend
	caps     *camera.Capabilities
	state    *camera.State
	sync     *synchronizer
	logger   common.ILoggerProvider
	messages chan *bus.Message
	watchID  int64
	stop     chan struct{}
	done     chan struct{}
}

// Manager owns capabilities and configuration of the attached backend.
// Every operation is synchronous.
type Manager struct {
	sync.Mutex

	logger      common.ILoggerProvider
	fanOut      providers.IEventFanOutProvider
	preview     providers.IPreviewProvider
	cron        providers.ICronProvider
	sessionName string
	queueSize   int
	pending     *cache.Cache
	sweepID     int
	session     *session
	onSaved     func(filename string) bool
}

// NewManager constructs a new camera manager.
func NewManager(ctor *ConstructManager) *Manager {
	ttl := ctor.PendingTTL
	if ttl <= 0 {
		ttl = defaultPendingTTL
	}

	queueSize := ctor.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	m := &Manager{
		logger:      ctor.Logger,
		fanOut:      ctor.FanOut,
		preview:     ctor.Preview,
		cron:        ctor.Cron,
		sessionName: ctor.Session,
		queueSize:   queueSize,
		pending:     cache.New(ttl, 0),
		sweepID:     -1,
	}

	if nil != m.cron {
		id, err := m.cron.AddFunc(pendingSweepSpec, m.pending.DeleteExpired)
		if err != nil {
			m.logger.Error("Failed to schedule pending captures sweep", err, common.LogSystemToken, logSystem)
		} else {
			m.sweepID = id
		}
	}

	return m
}

// Attach replaces current backend.
// Previous backend, if any, is detached first.
func (m *Manager) Attach(backend camera.IBackend, override *camera.Capabilities) error {
	m.Detach()

	name := m.sessionName
	if "" == name {
		name = namesgenerator.GetRandomName(0)
	}
	name = utils.NormalizeName(name)

	s := &session{
		name:    name,
		backend: backend,
		state:   camera.NewState(),
		logger: logger.NewPluginLogger(&logger.ConstructPluginLogger{
			SystemLogger: m.logger,
			System:       logSystem,
			Provider:     backend.GetName(),
			Session:      name,
		}),
		messages: make(chan *bus.Message, m.queueSize),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	err := backend.Init(&camera.InitDataBackend{Logger: s.logger, Session: name})
	if err != nil {
		s.logger.Error("Failed to init backend", err)
		return newFailed("attach", backend.GetName(), err)
	}

	if err := m.prepare(s, override); err != nil {
		s.logger.Error("Failed to attach backend", err)
		backend.Unload()
		return newFailed("attach", backend.GetName(), err)
	}

	m.Lock()
	m.session = s
	m.Unlock()

	go m.loop(s)

	s.logger.Info("Backend attached", common.LogValueToken, s.caps.Features.String())
	return nil
}

// Builds descriptor and subscribes to the backend bus.
func (m *Manager) prepare(s *session, override *camera.Capabilities) error {
	caps, err := newDescriptor(s.backend, override)
	if err != nil {
		return err
	}

	s.caps = caps
	if caps.HasFeature(enums.FeatureViewfinder) {
		vf, ok := s.backend.(camera.IViewfinder)
		if !ok || nil == vf.ViewfinderSurface() {
			return &ErrNoViewfinderSurface{}
		}
	}

	if nil == s.backend.Bus() {
		return &ErrNoBus{}
	}

	s.sync, err = newSynchronizer(s, m.queueSize)
	if err != nil {
		return err
	}

	s.watchID, err = s.backend.Bus().AddWatch(s.messages)
	if err != nil {
		s.sync.close()
		return err
	}

	return nil
}

// Detach releases current backend.
func (m *Manager) Detach() {
	m.Lock()
	s := m.session
	m.session = nil
	m.Unlock()

	if nil == s {
		return
	}

	s.backend.Bus().RemoveWatch(s.watchID)
	s.sync.close()
	close(s.stop)
	<-s.done
	s.backend.Unload()
	s.logger.Info("Backend detached")
}

// Close detaches backend and stops background jobs.
func (m *Manager) Close() {
	m.Detach()
	if nil != m.cron && m.sweepID >= 0 {
		m.cron.RemoveFunc(m.sweepID)
	}
}

// Session returns current session name.
func (m *Manager) Session() string {
	m.Lock()
	defer m.Unlock()

	if nil == m.session {
		return ""
	}

	return m.session.name
}

// Capabilities returns copy of the current descriptor.
func (m *Manager) Capabilities() (*camera.Capabilities, error) {
	m.Lock()
	defer m.Unlock()

	s, err := m.current("capabilities")
	if err != nil {
		return nil, err
	}

	return s.caps.Copy(), nil
}

// State returns copy of the current configuration.
func (m *Manager) State() (*camera.State, error) {
	m.Lock()
	defer m.Unlock()

	s, err := m.current("state")
	if err != nil {
		return nil, err
	}

	return s.state.Copy(), nil
}

// IsCapturing returns whether capture is in progress.
// This is an advisory flag, no operation is blocked by it.
func (m *Manager) IsCapturing() bool {
	m.Lock()
	defer m.Unlock()

	if nil == m.session {
		return false
	}

	return m.session.sync.isCapturing()
}

// Viewfinder returns backend viewfinder surface.
func (m *Manager) Viewfinder() (interface{}, error) {
	m.Lock()
	defer m.Unlock()

	s, err := m.current("viewfinder")
	if err != nil {
		return nil, err
	}

	vf, ok := s.backend.(camera.IViewfinder)
	if !s.caps.HasFeature(enums.FeatureViewfinder) || !ok {
		return nil, newError(KindViewfinderNotSupported, "viewfinder", nil)
	}

	return vf.ViewfinderSurface(), nil
}

// SetPictureSavedHandler sets handler invoked for every saved picture.
// Returning true re-issues still capture with the same filename.
func (m *Manager) SetPictureSavedHandler(handler func(filename string) bool) {
	m.Lock()
	defer m.Unlock()
	m.onSaved = handler
}

// Returns current session or BackendMissing error.
// Must be called under lock.
func (m *Manager) current(op string) (*session, error) {
	if nil == m.session {
		return nil, newError(KindBackendMissing, op, nil)
	}

	return m.session, nil
}
