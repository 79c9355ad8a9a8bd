package repo

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"perfume-shop/pkg/models"
)

type fakeSource struct {
	PerfumesSource
	gets    int
	perfume models.Perfume
	err     error
}

func (f *fakeSource) Get(_ context.Context, id string) (models.Perfume, error) {
	f.gets++
	if f.err != nil {
		return models.Perfume{}, f.err
	}
	return f.perfume, nil
}

func (f *fakeSource) Save(_ context.Context, p models.Perfume) (models.Perfume, error) {
	return p, nil
}

func (f *fakeSource) UpdateInfo(context.Context, models.PerfumeInfo, string) error {
	return nil
}

type fakeCache struct {
	values  map[string]string
	ttls    map[string]time.Duration
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCache) GetString(_ context.Context, key string) (string, error) {
	s, ok := f.values[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return s, nil
}

func (f *fakeCache) SetString(_ context.Context, key, value string, ttl time.Duration) error {
	f.values[key] = value
	f.ttls[key] = ttl
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func cachedPerfume() models.Perfume {
	return models.Perfume{ID: "p1", Perfumer: "Creed", Title: "Aventus", Price: 250}
}

func TestCachedGet_HitSkipsSource(t *testing.T) {
	src := &fakeSource{perfume: cachedPerfume()}
	c := newFakeCache()
	b, err := json.Marshal(cachedPerfume())
	require.NoError(t, err)
	c.values["perfume:p1"] = string(b)

	r := &PerfumesCached{PerfumesSource: src, Cache: c, TTL: time.Minute}

	got, err := r.Get(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, cachedPerfume(), got)
	require.Zero(t, src.gets, "cache hit must not touch the source")
}

func TestCachedGet_MissBackfillsWithTTL(t *testing.T) {
	src := &fakeSource{perfume: cachedPerfume()}
	c := newFakeCache()
	r := &PerfumesCached{PerfumesSource: src, Cache: c, TTL: time.Minute}

	got, err := r.Get(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, cachedPerfume(), got)
	require.Equal(t, 1, src.gets)

	stored, ok := c.values["perfume:p1"]
	require.True(t, ok, "miss must backfill the cache")
	require.Equal(t, time.Minute, c.ttls["perfume:p1"])

	var p models.Perfume
	require.NoError(t, json.Unmarshal([]byte(stored), &p))
	require.Equal(t, cachedPerfume(), p)

	// The backfilled entry serves the next lookup.
	_, err = r.Get(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, 1, src.gets)
}

func TestCachedGet_NotFoundNotCached(t *testing.T) {
	src := &fakeSource{err: ErrNotFound}
	c := newFakeCache()
	r := &PerfumesCached{PerfumesSource: src, Cache: c, TTL: time.Minute}

	_, err := r.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.Empty(t, c.values)
}

func TestCachedSave_InvalidatesKey(t *testing.T) {
	src := &fakeSource{}
	c := newFakeCache()
	c.values["perfume:p1"] = "stale"
	r := &PerfumesCached{PerfumesSource: src, Cache: c, TTL: time.Minute}

	_, err := r.Save(context.Background(), cachedPerfume())
	require.NoError(t, err)
	require.Contains(t, c.deleted, "perfume:p1")
	require.NotContains(t, c.values, "perfume:p1")
}

func TestCachedUpdateInfo_InvalidatesKey(t *testing.T) {
	src := &fakeSource{}
	c := newFakeCache()
	c.values["perfume:p1"] = "stale"
	r := &PerfumesCached{PerfumesSource: src, Cache: c, TTL: time.Minute}

	require.NoError(t, r.UpdateInfo(context.Background(), models.PerfumeInfo{Price: 300}, "p1"))
	require.Contains(t, c.deleted, "perfume:p1")
	require.NotContains(t, c.values, "perfume:p1")
}
