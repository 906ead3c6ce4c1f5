package stats

import (
	"encoding/json"
	"expvar"
	"net/http"
	"sync"
	"time"
)

const (
	NumActiveClients     = "NumActiveClients"
	NumMessagesBroadcast = "NumMessagesBroadcast"
	NumMalformedFrames   = "NumMalformedFrames"
)

type StatsProvider interface {
	Incr(name string)
	Decr(name string)
	RegisterMetric(name string)
	Run()
}

// StatsUpdater owns a set of expvar counters. Updates are applied on a
// single goroutine started by Run.
type StatsUpdater struct {
	vars       *expvar.Map
	updateChan chan metricsUpdate
	done       chan struct{}
	stopOnce   sync.Once
}

type metricsUpdate struct {
	name  string
	delta int64
}

// NewStatsUpdater creates a new stats updater and serves its counters at
// GET /debug/vars on mux. The map is not published to the global expvar
// registry, so several updaters can live in one process.
func NewStatsUpdater(mux *http.ServeMux) *StatsUpdater {
	su := &StatsUpdater{
		vars:       new(expvar.Map).Init(),
		updateChan: make(chan metricsUpdate, 512),
		done:       make(chan struct{}),
	}
	mux.HandleFunc("GET /debug/vars", su.serveVars)

	startTime := time.Now()
	su.vars.Set("Uptime", expvar.Func(func() any {
		return time.Since(startTime).Milliseconds()
	}))

	return su
}

func (su *StatsUpdater) serveVars(w http.ResponseWriter, _ *http.Request) {
	out := make(map[string]json.RawMessage)
	su.vars.Do(func(kv expvar.KeyValue) {
		out[kv.Key] = json.RawMessage(kv.Value.String())
	})

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(out)
}

func (su *StatsUpdater) RegisterMetric(name string) {
	su.vars.Set(name, new(expvar.Int))
}

// Value returns the current value of a registered counter, or 0.
func (su *StatsUpdater) Value(name string) int64 {
	if v, ok := su.vars.Get(name).(*expvar.Int); ok {
		return v.Value()
	}
	return 0
}

func (su *StatsUpdater) Incr(name string) {
	su.update(name, 1)
}

func (su *StatsUpdater) Decr(name string) {
	su.update(name, -1)
}

// update drops the change once the updater is stopped.
func (su *StatsUpdater) update(name string, delta int64) {
	select {
	case su.updateChan <- metricsUpdate{name: name, delta: delta}:
	case <-su.done:
	}
}

func (su *StatsUpdater) Run() {
	go func() {
		for {
			select {
			case u := <-su.updateChan:
				su.apply(u)
			case <-su.done:
				// flush what was queued before Stop
				for {
					select {
					case u := <-su.updateChan:
						su.apply(u)
					default:
						return
					}
				}
			}
		}
	}()
}

func (su *StatsUpdater) apply(u metricsUpdate) {
	if metric, ok := su.vars.Get(u.name).(*expvar.Int); ok {
		metric.Add(u.delta)
	}
}

func (su *StatsUpdater) Stop() {
	su.stopOnce.Do(func() {
		close(su.done)
	})
}
