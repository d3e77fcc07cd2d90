// Package badgr is an adapter for the badgerDB
package badgr

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/dgraph-io/badger"
	"github.com/google/uuid"

	"github.com/kodekulture/wordle-solo/game"
	"github.com/kodekulture/wordle-solo/repository"
)

var _ repository.Backup = new(BackupRepo)

// DefaultTTL is how long a suspended game is kept
const DefaultTTL = 7 * 24 * time.Hour

type BackupRepo struct {
	db  *badger.DB
	ttl time.Duration
}

// Dump implements repository.Backup.
func (r *BackupRepo) Dump(s game.Snapshot) error {
	return r.db.Update(func(txn *badger.Txn) error {
		b, err := json.Marshal(s)
		if err != nil {
			return err
		}
		e := badger.NewEntry([]byte(s.ID.String()), b)
		if r.ttl > 0 {
			e = e.WithTTL(r.ttl)
		}
		return txn.SetEntry(e)
	})
}

// Load implements repository.Backup.
func (r *BackupRepo) Load() ([]game.Snapshot, error) {
	var snaps []game.Snapshot
	err := r.db.View(func(txn *badger.Txn) error {
		// set badger options
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()
		// iterate over all items
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			// get key
			uid, err := uuid.Parse(string(item.Key()))
			if err != nil {
				return err
			}
			// get value
			var s game.Snapshot
			err = item.Value(func(v []byte) error {
				return json.Unmarshal(v, &s)
			})
			if err != nil {
				return err
			}
			s.ID = uid
			snaps = append(snaps, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].CreatedAt.After(snaps[j].CreatedAt)
	})
	return snaps, nil
}

// Drop implements repository.Backup.
func (r *BackupRepo) Drop() error {
	return r.db.DropAll()
}

// New returns a BackupRepo storing snapshots in db for ttl. A zero ttl keeps them forever.
func New(db *badger.DB, ttl time.Duration) *BackupRepo {
	return &BackupRepo{db: db, ttl: ttl}
}
