// Package orm is a thin query wrapper over GORM that adds query timing
// metrics and read-through Redis caching.
package orm

import (
	"time"

	"github.com/devtushar001/ietark/pkg/cache"
	"github.com/devtushar001/ietark/pkg/database"
	"github.com/devtushar001/ietark/pkg/metrics"
	"gorm.io/gorm"
)

type Query struct {
	db *gorm.DB
}

func DB() *Query {
	return &Query{db: database.DB}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value interface{}) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

func (q *Query) Create(v interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(v).Error
}

func (q *Query) Save(v interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Save(v).Error
}

// Cache runs the query through Redis: on a hit dest is filled from the
// cached value, on a miss the database result is stored under key for ttl.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		metrics.CacheHits.WithLabelValues("redis").Inc()
		return nil
	}
	metrics.CacheMisses.WithLabelValues("redis").Inc()

	defer metrics.ObserveDBQuery("select", time.Now())
	if err := q.db.Find(dest).Error; err != nil {
		return err
	}

	cache.Set(key, dest, ttl) //nolint:errcheck
	return nil
}
