package experiment

import "sync"

// Parameter is a named model input, e.g. process count or problem size. IDs
// are allocated by the Registry that owns the experiment, not by process
// globals, so two experiments never share counter state.
type Parameter struct {
	ID   int
	Name string
}

// Metric is a named measured quantity, e.g. time or FLOPS.
type Metric struct {
	ID   int
	Name string
}

// Registry allocates parameter and metric identities for one experiment.
type Registry struct {
	mu             sync.Mutex
	nextParameter  int
	nextMetric     int
	parametersByID map[int]Parameter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{parametersByID: make(map[int]Parameter)}
}

// NewParameter registers a parameter and returns it with a fresh ID. The ID
// doubles as the parameter's coordinate index in registration order.
func (r *Registry) NewParameter(name string) Parameter {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := Parameter{ID: r.nextParameter, Name: name}
	r.nextParameter++
	r.parametersByID[p.ID] = p
	return p
}

// NewMetric registers a metric and returns it with a fresh ID.
func (r *Registry) NewMetric(name string) Metric {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := Metric{ID: r.nextMetric, Name: name}
	r.nextMetric++
	return m
}

// Parameter looks up a registered parameter by ID.
func (r *Registry) Parameter(id int) (Parameter, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.parametersByID[id]
	return p, ok
}
