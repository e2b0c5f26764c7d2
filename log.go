// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import "go.uber.org/zap"

// logger is the package-wide structured logger, read by the unique table's
// resize path (robinhood.go), variable extension (bddtable.go), and the
// apply cache's lossy-slot eviction (lru.go). By default everything is
// routed to a no-op logger so library consumers pay nothing unless they
// call SetLogger, following go.uber.org/zap's own recommended pattern.
var logger = zap.NewNop()

// SetLogger installs l as the package-wide logger. Passing nil restores the
// no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}
