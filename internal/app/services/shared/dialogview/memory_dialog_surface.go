package dialogview

import (
	"sync"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
)

type DialogEvent string

const (
	EventCancel       DialogEvent = "cancel"
	EventOutsideClick DialogEvent = "outside_click"
	EventSubmit       DialogEvent = "submit"
)

// MemoryDialogSurface holds at most one mounted dialog and routes shell events to the
// handlers registered on it.
type MemoryDialogSurface struct {
	mu      sync.Mutex
	current *dialogHandle
	view    models.DialogView
	handles []*dialogHandle
}

func NewMemoryDialogSurface() *MemoryDialogSurface {
	return &MemoryDialogSurface{
		view: models.DialogView{State: models.DialogStateClosed},
	}
}

func (s *MemoryDialogSurface) Mount(view models.DialogView) contracts.DialogHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &dialogHandle{
		surface:  s,
		handlers: make(map[DialogEvent]map[int]func()),
	}
	s.current = handle
	s.view = view
	s.handles = append(s.handles, handle)
	return handle
}

func (s *MemoryDialogSurface) Snapshot() models.DialogView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Dispatch delivers event to the mounted dialog. Handlers run outside the surface lock.
func (s *MemoryDialogSurface) Dispatch(event DialogEvent) bool {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return false
	}
	handlers := make([]func(), 0, len(s.current.handlers[event]))
	for _, handler := range s.current.handlers[event] {
		handlers = append(handlers, handler)
	}
	s.mu.Unlock()

	for _, handler := range handlers {
		handler()
	}
	return len(handlers) > 0
}

// ActiveSubscriptions counts handlers still registered on any handle ever mounted.
func (s *MemoryDialogSurface) ActiveSubscriptions() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, handle := range s.handles {
		for _, handlers := range handle.handlers {
			count += len(handlers)
		}
	}
	return count
}

type dialogHandle struct {
	surface  *MemoryDialogSurface
	handlers map[DialogEvent]map[int]func()
	nextID   int
}

func (h *dialogHandle) Update(view models.DialogView) {
	h.surface.mu.Lock()
	defer h.surface.mu.Unlock()
	if h.surface.current == h {
		h.surface.view = view
	}
}

func (h *dialogHandle) Unmount() {
	h.surface.mu.Lock()
	defer h.surface.mu.Unlock()
	if h.surface.current == h {
		h.surface.current = nil
		h.surface.view = models.DialogView{State: models.DialogStateClosed}
	}
}

func (h *dialogHandle) OnCancel(handler func()) contracts.Unsubscribe {
	return h.subscribe(EventCancel, handler)
}

func (h *dialogHandle) OnOutsideClick(handler func()) contracts.Unsubscribe {
	return h.subscribe(EventOutsideClick, handler)
}

func (h *dialogHandle) OnSubmit(handler func()) contracts.Unsubscribe {
	return h.subscribe(EventSubmit, handler)
}

func (h *dialogHandle) subscribe(event DialogEvent, handler func()) contracts.Unsubscribe {
	h.surface.mu.Lock()
	defer h.surface.mu.Unlock()

	if h.handlers[event] == nil {
		h.handlers[event] = make(map[int]func())
	}
	id := h.nextID
	h.nextID++
	h.handlers[event][id] = handler

	return func() {
		h.surface.mu.Lock()
		defer h.surface.mu.Unlock()
		delete(h.handlers[event], id)
	}
}
