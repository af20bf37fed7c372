package kvstore

import (
	"time"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

var bucketName = []byte("beautyfind")

// BoltStore is the durable Store backed by a bbolt file. All keys live in a
// single bucket.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) the store file and ensures the bucket exists.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open kv store %s", path)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create kv bucket")
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(key string) (string, bool, error) {
	var value string
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			value = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, errors.Wrapf(err, "kv get %s", key)
	}
	return value, found, nil
}

func (s *BoltStore) Set(key, value string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
	return errors.Wrapf(err, "kv set %s", key)
}

func (s *BoltStore) Remove(key string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	return errors.Wrapf(err, "kv remove %s", key)
}

// Close releases the underlying bbolt file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
