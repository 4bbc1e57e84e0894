package blobs

// Message is a transient HUD notice. Its timer starts when it reaches the
// head of the queue.
type Message struct {
	Title       string
	Body        string
	EndsAt      uint64  // Tick at which the message is dropped
	Opacity     float64 // 0..1, falls off during the last fade ticks
	AboutSizing bool
	active      bool
}

// MessageQueue shows messages one at a time in FIFO order.
// At most one sizing advisory is queued at any time.
type MessageQueue struct {
	items    []*Message
	duration uint64
	fade     uint64
}

// NewMessageQueue creates a queue whose messages last duration ticks and
// fade out over the final fade ticks.
func NewMessageQueue(duration, fade int) *MessageQueue {
	return &MessageQueue{
		duration: uint64(max(duration, 1)),
		fade:     uint64(max(fade, 0)),
	}
}

// Push appends a message.
func (q *MessageQueue) Push(now uint64, title, body string) {
	q.push(now, &Message{Title: title, Body: body, Opacity: 1})
}

// PushSizing appends a sizing advisory, replacing any queued one.
func (q *MessageQueue) PushSizing(now uint64, title, body string) {
	q.ClearSizing(now)
	q.push(now, &Message{Title: title, Body: body, Opacity: 1, AboutSizing: true})
}

func (q *MessageQueue) push(now uint64, m *Message) {
	q.items = append(q.items, m)
	if len(q.items) == 1 {
		q.activate(now)
	}
}

// ClearSizing drops any queued sizing advisory.
func (q *MessageQueue) ClearSizing(now uint64) {
	kept := q.items[:0]
	for _, m := range q.items {
		if !m.AboutSizing {
			kept = append(kept, m)
		}
	}
	clear(q.items[len(kept):])
	q.items = kept
	if len(q.items) > 0 && !q.items[0].active {
		q.activate(now)
	}
}

func (q *MessageQueue) activate(now uint64) {
	h := q.items[0]
	h.active = true
	h.EndsAt = now + q.duration
	h.Opacity = 1
}

// Update drops expired messages and recomputes the head's opacity.
func (q *MessageQueue) Update(now uint64) {
	for len(q.items) > 0 {
		h := q.items[0]
		if !h.active {
			q.activate(now)
		}
		if now < h.EndsAt {
			break
		}
		q.items[0] = nil
		q.items = q.items[1:]
	}
	if len(q.items) == 0 {
		return
	}
	h := q.items[0]
	left := h.EndsAt - now
	if q.fade == 0 || left >= q.fade {
		h.Opacity = 1
		return
	}
	h.Opacity = float64(left) / float64(q.fade)
}

// Head returns the message on display, or nil.
func (q *MessageQueue) Head() *Message {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

// Len returns the number of queued messages.
func (q *MessageQueue) Len() int {
	return len(q.items)
}

// SizingCount returns how many sizing advisories are queued.
func (q *MessageQueue) SizingCount() int {
	n := 0
	for _, m := range q.items {
		if m.AboutSizing {
			n++
		}
	}
	return n
}

// Reset empties the queue.
func (q *MessageQueue) Reset() {
	clear(q.items)
	q.items = q.items[:0]
}
