package tuning

import "sync"

// Revalidator is anything that can re-derive its generated state after a
// tuning sheet changes underneath it.
type Revalidator interface {
	Revalidate()
}

// Registry tracks live revalidators so a hot reload can sweep every
// instance without scanning the scene.
type Registry struct {
	mu      sync.Mutex
	members map[Revalidator]struct{}
}

func NewRegistry() *Registry {
	return &Registry{members: map[Revalidator]struct{}{}}
}

// Controllers is the process-wide registry of live locomotion controllers.
var Controllers = NewRegistry()

func (r *Registry) Register(m Revalidator) {
	if r == nil || m == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[m] = struct{}{}
}

func (r *Registry) Deregister(m Revalidator) {
	if r == nil || m == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, m)
}

// RevalidateAll sweeps every registered member.
func (r *Registry) RevalidateAll() {
	if r == nil {
		return
	}
	r.mu.Lock()
	members := make([]Revalidator, 0, len(r.members))
	for m := range r.members {
		members = append(members, m)
	}
	r.mu.Unlock()

	for _, m := range members {
		m.Revalidate()
	}
}

// Len reports the registered member count.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}
