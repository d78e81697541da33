package nats

import (
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/mark3labs/firstrun/internal/logger"
)

const (
	readyTimeout    = 4 * time.Second
	drainTimeout    = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Bus is an embedded JetStream server together with its in-process client
// connection. It never opens a network port.
type Bus struct {
	Server *server.Server
	Conn   *nats.Conn
	JS     jetstream.JetStream
}

// Start boots an embedded NATS server with file-backed JetStream rooted at
// storeDir and connects to it in-process.
func Start(storeDir string) (*Bus, error) {
	ns, err := StartEmbeddedNATS(storeDir)
	if err != nil {
		return nil, err
	}

	nc, err := ConnectInProcess(ns)
	if err != nil {
		_ = Shutdown(nil, ns)
		return nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		_ = Shutdown(nc, ns)
		return nil, fmt.Errorf("creating jetstream context: %w", err)
	}

	return &Bus{Server: ns, Conn: nc, JS: js}, nil
}

// Close drains the connection and stops the server.
func (b *Bus) Close() error {
	if b == nil {
		return nil
	}
	return Shutdown(b.Conn, b.Server)
}

// StartEmbeddedNATS starts an embedded NATS server with JetStream enabled
// using storeDir for file-based storage.
func StartEmbeddedNATS(storeDir string) (*server.Server, error) {
	logger.Debug("starting embedded NATS server, store dir %s", storeDir)

	ns, err := server.NewServer(&server.Options{
		JetStream:  true,
		StoreDir:   storeDir,
		DontListen: true,
		NoSigs:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(readyTimeout) {
		ns.Shutdown()
		return nil, fmt.Errorf("nats server not ready after %s", readyTimeout)
	}

	logger.Debug("NATS server ready")
	return ns, nil
}

// ConnectInProcess creates an in-process connection to the embedded server.
func ConnectInProcess(ns *server.Server) (*nats.Conn, error) {
	conn, err := nats.Connect("", nats.InProcessServer(ns))
	if err != nil {
		return nil, fmt.Errorf("connecting in-process: %w", err)
	}
	return conn, nil
}

// Shutdown drains nc, falling back to a hard close, then stops ns and waits
// for it to exit. Either argument may be nil.
func Shutdown(nc *nats.Conn, ns *server.Server) error {
	if nc != nil {
		drained := make(chan error, 1)
		go func() { drained <- nc.Drain() }()

		select {
		case err := <-drained:
			if err != nil {
				logger.Warn("NATS drain failed, forcing close: %v", err)
				nc.Close()
			}
		case <-time.After(drainTimeout):
			logger.Warn("NATS drain timed out after %s, forcing close", drainTimeout)
			nc.Close()
		}
	}

	if ns == nil {
		return nil
	}

	ns.Shutdown()
	done := make(chan struct{})
	go func() {
		ns.WaitForShutdown()
		close(done)
	}()

	select {
	case <-done:
		logger.Debug("NATS server stopped")
		return nil
	case <-time.After(shutdownTimeout):
		return errors.New("nats server shutdown timed out")
	}
}
