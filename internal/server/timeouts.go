package server

import "time"

const (
	readTimeout = 10 * time.Second
	// A full season aggregation makes up to 13 sequential upstream calls.
	writeTimeout = 60 * time.Second
	idleTimeout  = 60 * time.Second

	// bannerTimeout bounds the best-effort startup connectivity probe.
	bannerTimeout = 10 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
