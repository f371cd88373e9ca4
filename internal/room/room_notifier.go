package room

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/romashorodok/rv2class/pkg/executils"
	"go.uber.org/fx"
)

const EventUpdateRooms = "update-rooms"

type websocketMessage struct {
	Event string   `json:"event"`
	Data  []string `json:"data"`
}

type Listener interface {
	WriteJSON(val any) error
	Close() error
}

// RoomNotifier fans room changes out to lobby listeners. Dispatching never
// blocks: changes that arrive while a fan-out is running are merged into
// the next one.
type RoomNotifier struct {
	logger *slog.Logger

	listenersMu sync.Mutex
	listeners   map[string]Listener

	pendingMu sync.Mutex
	pending   map[string]struct{}
	updateCh  chan struct{}
}

func (n *RoomNotifier) Listen(id string, l Listener) {
	n.listenersMu.Lock()
	defer n.listenersMu.Unlock()
	n.listeners[id] = l
}

func (n *RoomNotifier) Stop(id string) {
	n.remove(id)
}

func (n *RoomNotifier) remove(id string) bool {
	n.listenersMu.Lock()
	defer n.listenersMu.Unlock()
	if _, ok := n.listeners[id]; !ok {
		return false
	}
	delete(n.listeners, id)
	return true
}

func (n *RoomNotifier) Len() int {
	n.listenersMu.Lock()
	defer n.listenersMu.Unlock()
	return len(n.listeners)
}

func (n *RoomNotifier) DispatchUpdateRooms(roomName string) {
	n.pendingMu.Lock()
	n.pending[roomName] = struct{}{}
	n.pendingMu.Unlock()

	select {
	case n.updateCh <- struct{}{}:
	default:
	}
}

func (n *RoomNotifier) takePending() []string {
	n.pendingMu.Lock()
	defer n.pendingMu.Unlock()

	rooms := make([]string, 0, len(n.pending))
	for room := range n.pending {
		rooms = append(rooms, room)
	}
	n.pending = make(map[string]struct{})
	sort.Strings(rooms)
	return rooms
}

type listenerEntry struct {
	id string
	Listener
}

func (n *RoomNotifier) getListeners() []listenerEntry {
	n.listenersMu.Lock()
	defer n.listenersMu.Unlock()

	result := make([]listenerEntry, 0, len(n.listeners))
	for id, l := range n.listeners {
		result = append(result, listenerEntry{id: id, Listener: l})
	}
	return result
}

// drop closes a listener whose write failed, so its peer sees the socket go
// away and can reconnect.
func (n *RoomNotifier) drop(l listenerEntry, err error) {
	if !n.remove(l.id) {
		return
	}
	n.logger.Debug("dropping lobby listener", slog.String("id", l.id), slog.String("err", err.Error()))
	if err := l.Close(); err != nil {
		n.logger.Debug("unable close lobby listener", slog.String("id", l.id), slog.String("err", err.Error()))
	}
}

// broadcast sends one message per batch. Every listener is written from its
// own worker so a stalled peer only delays itself.
func (n *RoomNotifier) broadcast(rooms []string) {
	listeners := n.getListeners()
	if len(listeners) == 0 || len(rooms) == 0 {
		return
	}

	msg := &websocketMessage{Event: EventUpdateRooms, Data: rooms}
	opts := executils.ParallelOptions{Step: 1, Workers: len(listeners)}
	executils.ParallelExec(listeners, opts, func(l listenerEntry) {
		if err := l.WriteJSON(msg); err != nil {
			n.drop(l, err)
		}
	})
}

// Run delivers updates until ctx is done.
func (n *RoomNotifier) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ErrNotifierStopped
		case <-n.updateCh:
			n.broadcast(n.takePending())
		}
	}
}

func newRoomNotifier(logger *slog.Logger) *RoomNotifier {
	return &RoomNotifier{
		logger:    logger,
		listeners: make(map[string]Listener),
		pending:   make(map[string]struct{}),
		updateCh:  make(chan struct{}, 1),
	}
}

type NewRoomNotifierParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *slog.Logger
}

func NewRoomNotifier(params NewRoomNotifierParams) *RoomNotifier {
	notifier := newRoomNotifier(params.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				_ = notifier.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})

	return notifier
}
