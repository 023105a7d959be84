package ports

import "errors"

// ErrShuttingDown is returned by components that refuse work because the
// service has started its graceful shutdown.
var ErrShuttingDown = errors.New("server in graceful shutdown mode")
