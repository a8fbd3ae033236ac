package api

import (
	"net"

	"github.com/ansel1/merry"
	"github.com/apache/thrift/lib/go/thrift"
	"github.com/powerman/structlog"
)

// Server is a running thrift server for PropertyService.
type Server struct {
	server    *thrift.TSimpleServer
	transport *thrift.TServerSocket
}

// Listen binds addr and starts serving handler with the binary protocol in background.
// An addr with port 0 picks a free port, see Addr.
func Listen(log *structlog.Logger, addr string, handler PropertyService) (*Server, error) {
	transport, err := thrift.NewTServerSocket(addr)
	if err != nil {
		return nil, merry.Append(err, addr)
	}
	if err := transport.Listen(); err != nil {
		return nil, merry.Append(err, addr)
	}
	processor := NewPropertyServiceProcessor(handler)
	server := thrift.NewTSimpleServer4(processor, transport,
		thrift.NewTTransportFactory(), thrift.NewTBinaryProtocolFactoryDefault())

	log.Debug("serve api: " + transport.Addr().String())
	go log.ErrIfFail(server.Serve, "problem", "`failed to serve`")

	return &Server{server: server, transport: transport}, nil
}

func (x *Server) Addr() net.Addr {
	return x.transport.Addr()
}

// Stop closes the listener and waits for open connections to finish.
func (x *Server) Stop() error {
	return x.server.Stop()
}

// Dial connects a client to a PropertyService server.
func Dial(addr string) (*PropertyServiceClient, thrift.TTransport, error) {
	socket, err := thrift.NewTSocket(addr)
	if err != nil {
		return nil, nil, merry.Append(err, addr)
	}
	if err := socket.Open(); err != nil {
		return nil, nil, merry.Append(err, addr)
	}
	return NewPropertyServiceClientFactory(socket, thrift.NewTBinaryProtocolFactoryDefault()), socket, nil
}
