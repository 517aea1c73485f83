package server

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// store persists entities of one type in a bbolt bucket, with one nested
// bucket per owner keyed by uuid.
type store[T listable] struct {
	db     *bolt.DB
	bucket []byte
	newT   func() T
}

func newStore[T listable](db *bolt.DB, bucket string, newT func() T) (*store[T], error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	return &store[T]{db: db, bucket: []byte(bucket), newT: newT}, nil
}

func (s *store[T]) decode(b []byte) (T, error) {
	v := s.newT()
	if err := json.Unmarshal(b, v); err != nil {
		var zero T
		return zero, fmt.Errorf("corrupted %s entry: %w", s.bucket, err)
	}
	return v, nil
}

// get returns the entity, or false when it does not exist.
func (s *store[T]) get(owner, uuid string) (T, bool, error) {
	var out T
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket).Bucket([]byte(owner))
		if b == nil {
			return nil
		}
		raw := b.Get([]byte(uuid))
		if raw == nil {
			return nil
		}
		v, err := s.decode(raw)
		if err != nil {
			return err
		}
		out, found = v, true
		return nil
	})
	return out, found, err
}

// put stores v unless another entity of owner on the same agent already uses
// its name.
func (s *store[T]) put(owner string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket(s.bucket).CreateBucketIfNotExists([]byte(owner))
		if err != nil {
			return err
		}
		err = b.ForEach(func(k, data []byte) error {
			if string(k) == v.GetUUID() {
				return nil
			}
			o, err := s.decode(data)
			if err != nil {
				return err
			}
			if o.GetName() == v.GetName() && o.GetAgent() == v.GetAgent() {
				return conflict("name " + v.GetName() + " is already used")
			}
			return nil
		})
		if err != nil {
			return err
		}
		return b.Put([]byte(v.GetUUID()), raw)
	})
}

// delete removes the entity and reports whether it existed.
func (s *store[T]) delete(owner, uuid string) (bool, error) {
	found := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket).Bucket([]byte(owner))
		if b == nil || b.Get([]byte(uuid)) == nil {
			return nil
		}
		found = true
		return b.Delete([]byte(uuid))
	})
	return found, err
}

func (s *store[T]) list(owner string) ([]T, error) {
	var out []T
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket).Bucket([]byte(owner))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, data []byte) error {
			v, err := s.decode(data)
			if err != nil {
				return err
			}
			out = append(out, v)
			return nil
		})
	})
	return out, err
}
