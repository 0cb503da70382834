package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/shadeworks/shade/internal/paths"
)

const (
	lockTimeout      = 5 * time.Second
	staleLockTimeout = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

// ErrLockTimeout is returned when the config lock cannot be acquired in time.
var ErrLockTimeout = errors.New("config: lock timeout")

// WithLock runs fn while holding ~/.shaderc.lock so concurrent shade processes
// (two terminals toggling at once) do not lose each other's writes.
func WithLock(fn func() error) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}
	lockPath := configPath + ".lock"

	lockFile, err := acquireLock(lockPath, lockTimeout)
	if err != nil {
		return err
	}
	defer releaseLock(lockFile, lockPath)

	return fn()
}

// acquireLock creates lockPath exclusively, retrying until timeout. A lock
// older than staleLockTimeout is assumed abandoned and removed.
func acquireLock(lockPath string, timeout time.Duration) (*os.File, error) {
	deadline := time.Now().Add(timeout)

	for {
		if info, err := os.Stat(lockPath); err == nil && time.Since(info.ModTime()) > staleLockTimeout {
			_ = os.Remove(lockPath)
		}

		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			// PID for whoever has to debug a stuck lock
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f, nil
		}

		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		time.Sleep(lockPollInterval)
	}
}

func releaseLock(f *os.File, lockPath string) {
	if f != nil {
		_ = f.Close()
	}
	_ = os.Remove(lockPath)
}
