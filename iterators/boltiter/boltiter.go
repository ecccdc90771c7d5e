// Package boltiter exposes the key/value pairs of a bolt bucket as a lazy iterators.Cursor.
package boltiter

import (
	"bytes"
	"context"

	"github.com/boltdb/bolt"

	"github.com/adamluzsi/lazykit/iterators"
	"github.com/adamluzsi/lazykit/pkg/errorkit"
	"github.com/adamluzsi/lazykit/pkg/logger"
	"github.com/adamluzsi/lazykit/port/option"
)

const ErrBucketNotFound errorkit.Error = "bucket not found"

// Entry is a key/value pair of a bucket.
// Key and Value are copies, so they stay valid after the read transaction ended.
type Entry struct {
	Key   []byte
	Value []byte
}

type Option option.Option[Config]

type Config struct {
	Prefix []byte
	Logger *logger.Logger
}

func (c *Config) Init() {
	c.Logger = logger.Default
}

// Prefix limits the walk to the keys that start with p.
func Prefix(p []byte) Option {
	return option.Func[Config](func(c *Config) { c.Prefix = p })
}

// Logger sets the logger that reports transaction release failures.
func Logger(l *logger.Logger) Option {
	return option.Func[Config](func(c *Config) { c.Logger = l })
}

// Bucket opens a read-only transaction and walks the named bucket in key order.
//
// The transaction is released when the walk reaches the end of the bucket or the prefix range,
// or when the returned Cursor is closed.
// Close the Cursor when it is abandoned before exhaustion,
// otherwise the open read transaction blocks the database from remapping.
func Bucket(db *bolt.DB, name []byte, opts ...Option) (*iterators.Cursor[Entry], error) {
	conf := option.ToConfig[Config](opts)

	tx, err := db.Begin(false)
	if err != nil {
		return nil, err
	}

	bucket := tx.Bucket(name)
	if bucket == nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return nil, errorkit.Merge(ErrBucketNotFound.F("%s", name), rbErr)
		}
		return nil, ErrBucketNotFound.F("%s", name)
	}

	return iterators.FromPull[Entry](&handle{
		tx:     tx,
		cursor: bucket.Cursor(),
		prefix: conf.Prefix,
		logger: conf.Logger,
	}), nil
}

type handle struct {
	tx      *bolt.Tx
	cursor  *bolt.Cursor
	prefix  []byte
	logger  *logger.Logger
	started bool
}

func (h *handle) Next() (Entry, bool) {
	if h.tx == nil {
		return Entry{}, false
	}

	var k, v []byte
	if !h.started {
		h.started = true
		k, v = h.seek()
	} else {
		k, v = h.cursor.Next()
	}

	if k == nil || !bytes.HasPrefix(k, h.prefix) {
		h.release()
		return Entry{}, false
	}

	return Entry{Key: clone(k), Value: clone(v)}, true
}

func (h *handle) seek() ([]byte, []byte) {
	if len(h.prefix) == 0 {
		return h.cursor.First()
	}
	return h.cursor.Seek(h.prefix)
}

func (h *handle) Close() error {
	if h.tx == nil {
		return nil
	}
	tx := h.tx
	h.tx, h.cursor = nil, nil
	return tx.Rollback()
}

func (h *handle) release() {
	if err := h.Close(); err != nil {
		h.logger.Warn(context.Background(), "failed to release bolt read transaction",
			logger.ErrField(err))
	}
}

func clone(bs []byte) []byte {
	if bs == nil {
		return nil
	}
	return append(make([]byte, 0, len(bs)), bs...)
}
