package cli

import (
	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/observability"
)

// startMetrics registers Prometheus hooks for one run when path is set. The
// returned function writes the textfile and restores the no-op hooks; it is
// safe to call when path is empty.
func startMetrics(path string) (flush func() error) {
	if path == "" {
		return func() error { return nil }
	}
	m := observability.NewMetrics(appName)
	observability.SetPipelineHooks(m)
	observability.SetOutputHooks(m)
	return func() error {
		defer observability.Reset()
		if err := m.WriteTextfile(path); err != nil {
			return errs.WrapIO(err, "write metrics %s", path)
		}
		return nil
	}
}
