package easynews

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/f2prateek/train"
	trainlog "github.com/f2prateek/train/log"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/proxy"
)

type credentialsKey struct{}

func withCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

// basicAuth signs the request with the credentials of the call.
// It runs after the debug logger so the Authorization header is never dumped.
var basicAuth = train.InterceptorFunc(func(chain train.Chain) (*http.Response, error) {
	req := chain.Request()
	creds, ok := req.Context().Value(credentialsKey{}).(Credentials)
	if !ok || !creds.IsSet() {
		return chain.Proceed(req)
	}
	signed := req.Clone(req.Context())
	signed.SetBasicAuth(creds.Username, creds.Password)
	return chain.Proceed(signed)
})

func baseTransport(proxyAddr string, logger *log.Entry) (http.RoundTripper, error) {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
		MaxIdleConnsPerHost: 4,
	}
	if proxyAddr == "" {
		return t, nil
	}

	logger.WithFields(log.Fields{"addr": proxyAddr}).Debug("Using SOCKS5 proxy")
	dialer, err := proxy.SOCKS5("tcp", proxyAddr, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("can't connect to the proxy %s: %v", proxyAddr, err)
	}
	dc, ok := dialer.(interface {
		DialContext(ctx context.Context, network, addr string) (net.Conn, error)
	})
	if !ok {
		return nil, fmt.Errorf("proxy dialer for %s can't dial with a context", proxyAddr)
	}
	t.Proxy = nil
	t.DialContext = dc.DialContext
	return t, nil
}

// newTransport builds the round tripper used for searches.
// debug is one of "", "basic" or "body" and selects how much of every exchange is dumped to stderr.
func newTransport(base http.RoundTripper, debug string) (http.RoundTripper, error) {
	switch debug {
	case "":
		return train.TransportWith(base, basicAuth), nil
	case "1", "true", "basic":
		return train.TransportWith(base, trainlog.New(os.Stderr, trainlog.Basic), basicAuth), nil
	case "body":
		return train.TransportWith(base, trainlog.New(os.Stderr, trainlog.Body), basicAuth), nil
	}
	return nil, fmt.Errorf("unknown http debug level %q", debug)
}
