package player

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/slide/game"
	"github.com/oomph-ac/slide/oerror"
	"github.com/oomph-ac/slide/worker"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Manager ticks every registered player. Players are spread over a worker pool by name, so a
// single player is never ticked concurrently with itself.
type Manager struct {
	log  *logrus.Logger
	pool *worker.Pool

	mu      sync.RWMutex
	players *orderedmap.OrderedMap[string, *Player]

	tick   atomic.Uint64
	closed atomic.Bool
}

// NewManager creates a manager ticking players on the given amount of workers. Zero uses one
// worker per CPU. A nil logger logs nothing.
func NewManager(log *logrus.Logger, workers int) *Manager {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	m := &Manager{
		log:     log,
		players: orderedmap.NewOrderedMap[string, *Player](),
	}
	m.pool = worker.NewPool(workers, func(name string, recovered any) {
		m.log.Errorf("%s panicked while ticking: %v", name, recovered)
	})
	m.log.Debugf("ticking players on %d workers", m.pool.Size())
	return m
}

// Add registers a player. Names must be unique.
func (m *Manager) Add(p *Player) error {
	if m.closed.Load() {
		return oerror.New(game.ErrorManagerClosed)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.players.Get(p.Name()); ok {
		return oerror.New(game.ErrorDuplicatePlayer, p.Name())
	}
	m.players.Set(p.Name(), p)
	m.log.Debugf("%s added", p.Name())
	return nil
}

// Remove closes and unregisters the player with the given name.
func (m *Manager) Remove(name string) bool {
	m.mu.Lock()
	p, ok := m.players.Get(name)
	if ok {
		m.players.Delete(name)
	}
	m.mu.Unlock()

	if ok {
		p.Close()
		m.log.Debugf("%s removed", name)
	}
	return ok
}

// Player returns the player with the given name.
func (m *Manager) Player(name string) (*Player, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.players.Get(name)
}

// Players returns all players in the order they were added.
func (m *Manager) Players() []*Player {
	m.mu.RLock()
	defer m.mu.RUnlock()

	players := make([]*Player, 0, m.players.Len())
	for el := m.players.Front(); el != nil; el = el.Next() {
		players = append(players, el.Value)
	}
	return players
}

// Len returns the amount of registered players.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.players.Len()
}

// CurrentTick returns the amount of ticks run by the manager.
func (m *Manager) CurrentTick() uint64 {
	return m.tick.Load()
}

// Tick runs a tick of dt seconds for every player and waits for all of them to finish.
func (m *Manager) Tick(dt float64) error {
	if m.closed.Load() {
		return oerror.New(game.ErrorManagerClosed)
	}
	m.tick.Inc()

	for _, p := range m.Players() {
		if err := m.pool.Submit(p.Name(), func() {
			p.Tick(dt)
		}); err != nil {
			return err
		}
	}
	m.pool.Wait()
	return nil
}

// Close closes every player and stops the workers.
func (m *Manager) Close() {
	if m.closed.Swap(true) {
		return
	}

	m.mu.Lock()
	for el := m.players.Front(); el != nil; el = el.Next() {
		el.Value.Close()
	}
	m.players = orderedmap.NewOrderedMap[string, *Player]()
	m.mu.Unlock()

	m.pool.Close()
}
