// Package chainmap_test contains benchmarks for the chained hash map.
//
// The benchmarks cover the hot paths:
//   - Insertion, including the resizes the insertions trigger
//   - Non-destructive lookup on a populated map
//   - The destructive Get/Put cycle
//   - Full iteration
package chainmap_test

import (
	"strconv"
	"testing"

	"github.com/theflywheel/chainmap"
	"github.com/theflywheel/chainmap/hash"
)

const populated = 10_000

func populatedMap() *chainmap.Map[string, int] {
	m := chainmap.New[string, int](hash.String)
	for i := 0; i < populated; i++ {
		m.Put("key_"+strconv.Itoa(i), i)
	}
	return m
}

func BenchmarkPut(b *testing.B) {
	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = "key_" + strconv.Itoa(i)
	}
	m := chainmap.New[string, int](hash.String)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m.Put(keys[i], i)
	}
}

func BenchmarkPutOverwrite(b *testing.B) {
	m := populatedMap()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m.Put("key_"+strconv.Itoa(i%populated), i)
	}
}

func BenchmarkLookup(b *testing.B) {
	m := populatedMap()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, ok := m.Lookup("key_" + strconv.Itoa(i%populated)); !ok {
			b.Fatal("lookup missed a present key")
		}
	}
}

func BenchmarkGetPut(b *testing.B) {
	m := populatedMap()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k := "key_" + strconv.Itoa(i%populated)
		v, ok := m.Get(k)
		if !ok {
			b.Fatal("get missed a present key")
		}
		m.Put(k, v)
	}
}

func BenchmarkIterate(b *testing.B) {
	m := populatedMap()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n := 0
		for it := m.Iterator(); it.HasElem(); it.Next() {
			n++
		}
		if n != populated {
			b.Fatalf("iterated %d entries, want %d", n, populated)
		}
	}
}
