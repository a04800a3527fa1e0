// Package store persists device-local state: the in-progress session and
// the user preferences that must survive a restart.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/worktrack-app/worktrack/internal/models"
)

var pathToDB string

var (
	bucketState = []byte("state")
	bucketPrefs = []byte("prefs")
)

var errWorktrackRunning = errors.New(
	"is worktrack already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) ActiveSession() (*models.ActiveSession, error) {
	var raw []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketState).Get([]byte(KeyActiveSession))
		if len(v) != 0 {
			raw = append(raw, v...)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, nil
	}

	var sess models.ActiveSession

	err = json.Unmarshal(raw, &sess)
	if err != nil {
		// a corrupt cached session is discarded rather than wedging
		// every launch
		_ = c.DeleteActiveSession()
		return nil, nil
	}

	return &sess, nil
}

func (c *Client) SaveActiveSession(sess *models.ActiveSession) error {
	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put([]byte(KeyActiveSession), value)
	})
}

func (c *Client) DeleteActiveSession() error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Delete([]byte(KeyActiveSession))
	})
}

func (c *Client) UserName() (string, error) {
	return c.pref(KeyUserName)
}

func (c *Client) SetUserName(name string) error {
	return c.setPref(KeyUserName, name)
}

func (c *Client) ReminderInterval() (time.Duration, bool, error) {
	v, err := c.pref(KeyReminderInterval)
	if err != nil || v == "" {
		return 0, false, err
	}

	secs, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, nil
	}

	return time.Duration(secs) * time.Second, true, nil
}

func (c *Client) SetReminderInterval(d time.Duration) error {
	return c.setPref(
		KeyReminderInterval,
		strconv.Itoa(int(d.Seconds())),
	)
}

func (c *Client) pref(key string) (string, error) {
	var value string

	err := c.View(func(tx *bolt.Tx) error {
		value = string(tx.Bucket(bucketPrefs).Get([]byte(key)))
		return nil
	})

	return value, err
}

func (c *Client) setPref(key, value string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPrefs).Put([]byte(key), []byte(value))
	})
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{
		db,
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// lock contention on an already-open database surfaces as a
		// timeout through Options.Timeout
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errWorktrackRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	pathToDB = dbPath

	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}
	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists(bucketState)
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists(bucketPrefs)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
