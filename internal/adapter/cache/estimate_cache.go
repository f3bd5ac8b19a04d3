package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"go.etcd.io/bbolt"

	"lexfreq/internal/port"
)

var bucketEstimates = []byte("estimates")

// EstimateCache persists estimator replies keyed by model and line,
// so reruns over the same file skip the external calls.
type EstimateCache struct {
	db *bbolt.DB
}

func NewEstimateCache(path string) (*EstimateCache, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketEstimates)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache bucket: %w", err)
	}

	return &EstimateCache{db: db}, nil
}

func cacheKey(model, line string) []byte {
	hash := sha256.Sum256([]byte(model + "\x00" + line))
	return []byte(hex.EncodeToString(hash[:16]))
}

func (c *EstimateCache) Get(model, line string) (string, bool) {
	var word string
	var found bool

	c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketEstimates).Get(cacheKey(model, line))
		if data != nil {
			word = string(data)
			found = true
		}
		return nil
	})

	return word, found
}

func (c *EstimateCache) Put(model, line, word string) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketEstimates).Put(cacheKey(model, line), []byte(word))
	})
}

func (c *EstimateCache) Close() error {
	return c.db.Close()
}

// CachedEstimator wraps an Estimator with the cache, answering from
// it when possible and recording fresh replies.
type CachedEstimator struct {
	estimator port.Estimator
	cache     *EstimateCache
	hits      int
}

func NewCachedEstimator(estimator port.Estimator, cache *EstimateCache) *CachedEstimator {
	return &CachedEstimator{
		estimator: estimator,
		cache:     cache,
	}
}

func (e *CachedEstimator) EstimateImportantWord(line string) (string, error) {
	if word, hit := e.cache.Get(e.estimator.ModelName(), line); hit {
		e.hits++
		return word, nil
	}

	word, err := e.estimator.EstimateImportantWord(line)
	if err != nil {
		return "", err
	}

	if err := e.cache.Put(e.estimator.ModelName(), line, word); err != nil {
		return "", fmt.Errorf("failed to record reply in cache: %w", err)
	}

	return word, nil
}

func (e *CachedEstimator) ModelName() string {
	return e.estimator.ModelName()
}

// Hits returns how many lines were answered from the cache.
func (e *CachedEstimator) Hits() int {
	return e.hits
}
