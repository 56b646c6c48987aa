package pprof

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/sirupsen/logrus"
)

// Serve exposes the runtime profiling endpoints on addr without blocking.
// Browse http://<addr>/debug/pprof to inspect a running node.
func Serve(addr string, log *logrus.Logger) {
	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Errorf("pprof server stopped: %v", err)
		}
	}()
}
