package engine

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/tatianab/castle-adventure/internal/logger"
	"github.com/tatianab/castle-adventure/internal/world"
)

// Engine hands out sessions over a single shared world.
type Engine struct {
	world *world.World
	log   *slog.Logger
}

// NewEngine returns an Engine for w. A nil logger falls back to slog.Default.
func NewEngine(w *world.World, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		world: w,
		log:   log,
	}
}

func (e *Engine) World() *world.World {
	return e.world
}

// NewSession starts a fresh playthrough standing in the start room with an
// empty inventory.
func (e *Engine) NewSession() *Session {
	id := uuid.New()
	s := &Session{
		ID:    id,
		world: e.world,
		log:   logger.WithSession(e.log, id.String()),
		room:  e.world.Start(),
	}
	s.log.Debug("session created", "world", e.world.Title(), "room", s.room)
	return s
}
