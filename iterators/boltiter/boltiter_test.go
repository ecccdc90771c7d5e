package boltiter_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/boltdb/bolt"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
	"go.llib.dev/testcase"

	"github.com/adamluzsi/lazykit/iterators"
	"github.com/adamluzsi/lazykit/iterators/boltiter"
	"github.com/adamluzsi/lazykit/pkg/logger"
)

var bucketName = []byte("entities")

func NewDB(tb testing.TB) *bolt.DB {
	path := filepath.Join(os.TempDir(), uuid.NewV4().String())
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	require.NoError(tb, err)
	tb.Cleanup(func() {
		require.NoError(tb, db.Close())
		require.NoError(tb, os.Remove(path))
	})
	return db
}

func Seed(tb testing.TB, db *bolt.DB, kvs map[string]string) {
	require.NoError(tb, db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		for k, v := range kvs {
			if err := bucket.Put([]byte(k), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	}))
}

func keys(es []boltiter.Entry) []string {
	var ks []string
	for _, e := range es {
		ks = append(ks, string(e.Key))
	}
	return ks
}

func TestBucket(t *testing.T) {
	s := testcase.NewSpec(t)

	db := testcase.Let(s, func(t *testcase.T) *bolt.DB {
		return NewDB(t)
	})
	opts := testcase.LetValue[[]boltiter.Option](s, nil)
	act := func(t *testcase.T) (*iterators.Cursor[boltiter.Entry], error) {
		return boltiter.Bucket(db.Get(t), bucketName, opts.Get(t)...)
	}

	s.When("the bucket is missing", func(s *testcase.Spec) {
		s.Then("it fails with ErrBucketNotFound", func(t *testcase.T) {
			c, err := act(t)
			t.Must.ErrorIs(boltiter.ErrBucketNotFound, err)
			t.Must.Nil(c)
		})

		s.Then("the read transaction is released", func(t *testcase.T) {
			_, _ = act(t)
			t.Must.Equal(0, db.Get(t).Stats().OpenTxN)
		})
	})

	s.When("the bucket has entries", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			Seed(t, db.Get(t), map[string]string{
				"user:2":  "bar",
				"user:1":  "foo",
				"group:1": "admins",
				"user:3":  "baz",
			})
		})

		s.Then("entries are yielded in key order", func(t *testcase.T) {
			c, err := act(t)
			t.Must.NoError(err)
			t.Must.Equal([]string{"group:1", "user:1", "user:2", "user:3"}, keys(c.Collect()))
		})

		s.Then("values belong to their keys", func(t *testcase.T) {
			c, err := act(t)
			t.Must.NoError(err)
			e, found := c.Find(func(e boltiter.Entry) bool { return string(e.Key) == "user:2" })
			t.Must.True(found)
			t.Must.Equal("bar", string(e.Value))
			t.Must.NoError(c.Close())
		})

		s.Then("the transaction is released after exhaustion", func(t *testcase.T) {
			c, err := act(t)
			t.Must.NoError(err)
			t.Must.Equal(1, db.Get(t).Stats().OpenTxN)
			_ = c.Count()
			t.Must.Equal(0, db.Get(t).Stats().OpenTxN)
			t.Must.NoError(c.Close())
		})

		s.Then("closing before exhaustion releases the transaction", func(t *testcase.T) {
			c, err := act(t)
			t.Must.NoError(err)
			_, ok := c.Next()
			t.Must.True(ok)
			t.Must.NoError(c.Close())
			t.Must.Equal(0, db.Get(t).Stats().OpenTxN)

			_, ok = c.Next()
			t.Must.False(ok)
		})

		s.Then("entries stay valid after the transaction ended", func(t *testcase.T) {
			c, err := act(t)
			t.Must.NoError(err)
			es := c.Collect()
			t.Must.NoError(db.Get(t).Update(func(tx *bolt.Tx) error {
				return tx.Bucket(bucketName).Put([]byte("user:1"), []byte("changed"))
			}))
			t.Must.Equal("foo", string(es[1].Value))
		})

		s.And("a prefix is given", func(s *testcase.Spec) {
			opts.LetValue(s, []boltiter.Option{boltiter.Prefix([]byte("user:"))})

			s.Then("only the keys with the prefix are yielded", func(t *testcase.T) {
				c, err := act(t)
				t.Must.NoError(err)
				t.Must.Equal([]string{"user:1", "user:2", "user:3"}, keys(c.Collect()))
			})
		})

		s.And("a prefix without matches is given", func(s *testcase.Spec) {
			opts.LetValue(s, []boltiter.Option{boltiter.Prefix([]byte("zzz"))})

			s.Then("the cursor is empty", func(t *testcase.T) {
				c, err := act(t)
				t.Must.NoError(err)
				t.Must.Equal(0, c.Count())
				t.Must.Equal(0, db.Get(t).Stats().OpenTxN)
			})
		})

		s.And("the cursor is used in a pipeline", func(s *testcase.Spec) {
			s.Then("stages work on the bucket entries", func(t *testcase.T) {
				c, err := act(t)
				t.Must.NoError(err)
				values := iterators.Map(c.Filter(func(e boltiter.Entry) bool {
					return len(e.Value) == 3
				}), func(e boltiter.Entry) string { return string(e.Value) })
				t.Must.Equal([]string{"foo", "bar", "baz"}, values.Collect())
			})
		})
	})

	s.When("the bucket is empty", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) { Seed(t, db.Get(t), nil) })

		s.Then("the cursor is empty", func(t *testcase.T) {
			c, err := act(t)
			t.Must.NoError(err)
			_, ok := c.Next()
			t.Must.False(ok)
		})
	})
}

func TestBucket_closeAfterExhaustionDoesNotWarn(t *testing.T) {
	buf := logger.Stub(t)
	db := NewDB(t)
	Seed(t, db, map[string]string{"a": "1"})

	c, err := boltiter.Bucket(db, bucketName, boltiter.Logger(logger.Default))
	require.NoError(t, err)
	require.Equal(t, 1, c.Count())
	require.NoError(t, c.Close())
	require.Empty(t, buf.String())
}

func ExampleBucket() {
	path := filepath.Join(os.TempDir(), uuid.NewV4().String())
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		panic(err)
	}
	defer os.Remove(path)
	defer db.Close()

	_ = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte("colors"))
		if err != nil {
			return err
		}
		_ = b.Put([]byte("b"), []byte("blue"))
		_ = b.Put([]byte("r"), []byte("red"))
		return nil
	})

	c, err := boltiter.Bucket(db, []byte("colors"))
	if err != nil {
		panic(err)
	}
	defer c.Close()

	c.ForEach(func(e boltiter.Entry) {
		fmt.Printf("%s=%s\n", e.Key, e.Value)
	})
	// Output:
	// b=blue
	// r=red
}
