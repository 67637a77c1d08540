package entitysync

import (
	"sync"
	"time"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// DefaultNotificationTTL tiempo que una notificación permanece visible.
const DefaultNotificationTTL = 5 * time.Second

// Timer temporizador cancelable.
type Timer interface {
	Stop() bool
}

// Clock programa callbacks diferidos; inyectable para tests.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock usa time.AfterFunc.
type SystemClock struct{}

func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// NoticeBoard notificaciones transitorias, un slot por tipo de entidad.
// Un mensaje nuevo sobrescribe el anterior y reinicia el temporizador de limpieza.
type NoticeBoard struct {
	ttl   time.Duration
	clock Clock

	mu    sync.Mutex
	slots map[entity.Kind]*noticeSlot
}

type noticeSlot struct {
	current dto.Notification
	visible bool
	timer   Timer
	gen     uint64
}

// NewNoticeBoard construye el tablero. ttl <= 0 usa DefaultNotificationTTL.
func NewNoticeBoard(ttl time.Duration, clock Clock) *NoticeBoard {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &NoticeBoard{ttl: ttl, clock: clock, slots: make(map[entity.Kind]*noticeSlot)}
}

// Notify muestra n en el slot del tipo y programa su limpieza.
func (b *NoticeBoard) Notify(kind entity.Kind, n dto.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	slot, ok := b.slots[kind]
	if !ok {
		slot = &noticeSlot{}
		b.slots[kind] = slot
	}
	if slot.timer != nil {
		slot.timer.Stop()
	}
	slot.gen++
	slot.current = n
	slot.visible = true

	// gen descarta un callback que ya se disparó antes del Stop.
	gen := slot.gen
	slot.timer = b.clock.AfterFunc(b.ttl, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if slot.gen == gen {
			slot.current = dto.Notification{}
			slot.visible = false
			slot.timer = nil
		}
	})
}

// Current notificación visible del tipo, si existe.
func (b *NoticeBoard) Current(kind entity.Kind) (dto.Notification, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	slot, ok := b.slots[kind]
	if !ok || !slot.visible {
		return dto.Notification{}, false
	}
	return slot.current, true
}
