package mock

import "net/http/httptest"

// HTTPTestServer serves a Service over a local httptest listener
type HTTPTestServer struct {
	*Service
	Server *httptest.Server
	// URL is the API base origin, e.g. http://127.0.0.1:53121/api/
	URL string
}

func NewHTTPTestServer(opts ...Option) (*HTTPTestServer, error) {
	service, err := NewService(opts...)
	if err != nil {
		return nil, err
	}
	server := &HTTPTestServer{Service: service}
	server.Server = httptest.NewServer(service.Handler())
	server.URL = server.Server.URL + "/api/"
	return server, nil
}

func (s *HTTPTestServer) Close() {
	if s.Server != nil {
		s.Server.Close()
	}
	s.Server = nil
}
