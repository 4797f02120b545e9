package providers

// IServerProvider defines control server.
type IServerProvider interface {
	Start() error
	Stop()
}
