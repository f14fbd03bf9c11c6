package hal

import "sync"

type hostKeyboard struct {
	ch chan KeyEvent

	mu   sync.Mutex
	held [keyCount]bool
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) Pressed(code KeyCode) bool {
	if code >= keyCount {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[code]
}

func (k *hostKeyboard) set(code KeyCode, down bool) {
	k.mu.Lock()
	k.held[code] = down
	k.mu.Unlock()
}

// emit queues an event, dropping it if the reader has fallen behind.
func (k *hostKeyboard) emit(code KeyCode, press bool) {
	select {
	case k.ch <- KeyEvent{Code: code, Press: press}:
	default:
	}
}
