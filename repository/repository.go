// Package repository is responsible for keeping an unfinished game between runs of the application
package repository

import (
	"github.com/kodekulture/wordle-solo/game"
)

type Backup interface {
	// Load returns every stored snapshot, newest first
	Load() ([]game.Snapshot, error)
	// Dump stores the snapshot of an unfinished game
	Dump(s game.Snapshot) error
	// Drop deletes all stored snapshots
	Drop() error
}
