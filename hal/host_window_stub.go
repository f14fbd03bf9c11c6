//go:build !cgo

package hal

func RunWindow(_ func(h HAL) func() error, _ WindowConfig) error {
	return ErrNoWindow
}
