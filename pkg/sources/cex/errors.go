// Package cex provides venue adapters for centralized exchange REST APIs.
package cex

import "errors"

// ErrNoTransport indicates that an adapter was constructed without a
// transport client.
var ErrNoTransport = errors.New("transport client is required")
