package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/theflywheel/chainmap"
	"github.com/theflywheel/chainmap/hash"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	m := chainmap.New[int, int](hash.Int, chainmap.WithLogger(logger))

	// Insert some data. Crossing the load factor logs the resizes.
	for i := 0; i < 20; i++ {
		m.Put(i, i*100)
	}

	fmt.Printf("Inserted 20 key-value pairs, len=%d cap=%d\n", m.Len(), m.Cap())

	// Non-destructive reads.
	for i := 0; i < 25; i += 5 {
		if v, ok := m.Lookup(i); ok {
			fmt.Printf("Key %d => Value %d\n", i, v)
		} else {
			fmt.Printf("Key %d not found\n", i)
		}
	}

	// Overwrite a value; the displaced value comes back.
	if old, replaced := m.Put(2, 999); replaced {
		fmt.Printf("Replaced value for key 2, old value was %d\n", old)
	}

	// Destructive read: the entry is gone afterwards.
	if v, ok := m.Get(2); ok {
		fmt.Printf("Took key 2 => %d, len is now %d\n", v, m.Len())
	}
	if _, ok := m.Get(2); !ok {
		fmt.Println("Key 2 is no longer present")
	}

	// Drain the rest.
	n := 0
	for d := m.Drain(); ; {
		_, _, ok := d.Next()
		if !ok {
			break
		}
		n++
	}
	fmt.Printf("Drained %d entries, len=%d\n", n, m.Len())
}
