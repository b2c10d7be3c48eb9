// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package cache

import (
	"sync"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	c.Set("key", "value")

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("Get() miss, want hit")
	}
	if got.(string) != "value" {
		t.Errorf("Get() = %v, want value", got)
	}
}

func TestCacheMiss(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	if _, ok := c.Get("absent"); ok {
		t.Error("Get() hit on absent key")
	}

	stats := c.GetStats()
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	c.SetWithTTL("ephemeral", 42, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("ephemeral"); ok {
		t.Error("Get() hit on expired entry")
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("deleted key still present")
	}

	c.Clear()
	if _, ok := c.Get("b"); ok {
		t.Error("key survived Clear()")
	}
	if got := c.GetStats().TotalKeys; got != 0 {
		t.Errorf("TotalKeys = %d after Clear, want 0", got)
	}
}

func TestCacheHitRate(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	c.Set("key", "value")
	c.Get("key")
	c.Get("key")
	c.Get("missing")

	want := float64(2) / 3 * 100
	if got := c.HitRate(); got != want {
		t.Errorf("HitRate() = %v, want %v", got, want)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			c.Set(GenerateKey("film", n), n)
		}(i)
		go func(n int) {
			defer wg.Done()
			c.Get(GenerateKey("film", n))
		}(i)
	}
	wg.Wait()
}

func TestGenerateKeyDeterministic(t *testing.T) {
	type params struct {
		Title string
		Year  int
	}

	a := GenerateKey("search", params{"Heat", 1995})
	b := GenerateKey("search", params{"Heat", 1995})
	if a != b {
		t.Errorf("keys differ for equal params: %q vs %q", a, b)
	}

	c := GenerateKey("search", params{"Heat", 1996})
	if a == c {
		t.Error("keys collide for different params")
	}
}
