package proxy

import (
	"context"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/proxy"
)

// NewSocksClient builds an HTTP client that tunnels every request through
// the given SOCKS5 proxy. Useful when the completion API is unreachable
// directly.
func NewSocksClient(socksAddr string) (*http.Client, error) {
	dialer, err := proxy.SOCKS5("tcp", socksAddr, nil, proxy.Direct)
	if err != nil {
		return nil, err
	}

	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialer.Dial(network, addr)
		},
	}

	// Generous timeout; completions can take a while over slow tunnels.
	return &http.Client{
		Transport: transport,
		Timeout:   120 * time.Second,
	}, nil
}
