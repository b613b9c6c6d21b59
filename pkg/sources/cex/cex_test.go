package cex

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/zecwatch/ratequorum/pkg/sources"
	"github.com/zecwatch/ratequorum/pkg/transport"
)

// newTestVenue spins up an httptest server serving handler and builds the
// venue under test against it via the api_url override.
func newTestVenue(factory sources.Factory, handler http.HandlerFunc) (sources.Venue, *httptest.Server, error) {
	server := httptest.NewServer(handler)

	client := transport.New(transport.Config{Timeout: 2 * time.Second})
	venue, err := factory(sources.FactoryConfig{
		Client: client,
		APIURL: server.URL,
	})
	if err != nil {
		server.Close()
		return nil, nil, err
	}

	return venue, server, nil
}
