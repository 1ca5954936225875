package xgbwm

import (
	"fmt"
	"os/exec"
)

// Spawn launches argv as a child process (dwm's spawn): exec.Command
// starts it and a goroutine reaps it, so a hung or slow-exiting launched
// program never blocks the event loop. There is no double fork. Only the
// start error is reported; the
// program's own exit status is the caller's business, not the window
// manager's.
func (s *Surface) Spawn(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("xgbwm: spawn: empty argv")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("xgbwm: spawn %q: %w", argv, err)
	}
	go cmd.Wait()
	return nil
}
