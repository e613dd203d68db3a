/*
Package chainmap provides an in-memory hash map built on separate chaining.

Map stores entries in an array of buckets. Each bucket holds a singly
linked chain of the entries whose hashed keys map to it; collisions are
resolved by scanning that chain. When the entry count reaches the load
factor times the bucket count, the bucket array is doubled and every
entry is rehashed against the new capacity.

Basic usage:

	import (
		"github.com/theflywheel/chainmap"
		"github.com/theflywheel/chainmap/hash"
	)

	m := chainmap.New[string, int](hash.String)

	// Insert data
	m.Put("a", 17)
	m.Put("b", 78)

	// Non-destructive read
	v, ok := m.Lookup("a")

	// Destructive read: removes the entry on a hit
	v, ok = m.Get("a")

	// Iterate over all entries
	for it := m.Iterator(); it.HasElem(); it.Next() {
		k, v := it.Elem()
		fmt.Println(k, v)
	}

Features:

  - Separate chaining with front-insertion collision chains
  - Injected hash function, so any comparable key type works
  - Automatic doubling when the load factor (default 0.75) is exceeded
  - Lazy bucket allocation: an empty map holds no buckets until first Put
  - Borrowing and consuming iteration over all entries

Get is a destructive lookup: a hit removes the entry from the map. This
mirrors the behavior of the reference design this package implements; use
Lookup when the entry should stay in the map.

The map is single-threaded. Wrap it in a mutex if it must be shared.
*/
package chainmap
