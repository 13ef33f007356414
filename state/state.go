// Package state is the local domain-state store: independent entity
// slices composed behind one mutation surface, snapshotted to a durable
// slot after every change and rehydrated at startup.
package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

// Event describes one committed mutation for subscribers.
type Event struct {
	Slice string    `json:"slice"`
	Op    string    `json:"op"`
	ID    string    `json:"id,omitempty"`
	At    time.Time `json:"at"`
}

// Publisher receives an event after each committed mutation. Publish must
// not call back into the container.
type Publisher interface {
	Publish(Event)
}

// Container composes every slice behind one lock. All mutations run to
// completion under the lock, so no two can interleave.
type Container struct {
	mu   sync.Mutex
	snap entity.Snapshot
	slot Slot
	ns   string
	log  *zap.Logger
	pub  Publisher
}

// New rehydrates the container from the slot's snapshot for the
// namespace, defaulting every missing slice to empty.
func New(slot Slot, namespace string, log *zap.Logger) (*Container, error) {
	c := &Container{slot: slot, ns: namespace, log: log}
	data, ok, err := slot.Load(namespace)
	if err != nil {
		return nil, err
	}
	if ok {
		snap, err := decodeSnapshot(data)
		if err != nil {
			return nil, err
		}
		c.snap = *snap
	} else {
		normalize(&c.snap)
	}
	return c, nil
}

// SetPublisher attaches the mutation-event publisher. Optional.
func (c *Container) SetPublisher(p Publisher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pub = p
}

// Namespace returns the durable namespace this container serves.
func (c *Container) Namespace() string {
	return c.ns
}

// commit persists the whole composed state and notifies subscribers.
// Called with the lock held, after the in-memory update has been applied.
// A failed durable write keeps the in-memory update; the failure is
// surfaced as a warning, not rolled back.
func (c *Container) commit(slice, op, id string) {
	data, err := encodeSnapshot(&c.snap)
	if err != nil {
		c.log.Warn("snapshot encode failed", zap.String("namespace", c.ns), zap.Error(err))
	} else if err := c.slot.Save(c.ns, data); err != nil {
		c.log.Warn("snapshot write failed, in-memory state retained",
			zap.String("namespace", c.ns), zap.String("slice", slice), zap.Error(err))
	}
	if c.pub != nil {
		c.pub.Publish(Event{Slice: slice, Op: op, ID: id, At: time.Now().UTC()})
	}
}

// Snapshot returns a deep copy of the composed state, for export and
// round-trip checks.
func (c *Container) Snapshot() (entity.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, err := encodeSnapshot(&c.snap)
	if err != nil {
		return entity.Snapshot{}, err
	}
	snap, err := decodeSnapshot(data)
	if err != nil {
		return entity.Snapshot{}, err
	}
	return *snap, nil
}

func newID() string {
	return uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC()
}
