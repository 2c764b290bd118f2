package config

import (
	"log"
	"os"
	"strings"
	"time"

	"staff-scheduler-api/store"
)

// Data is the active data store. All controllers and services read and
// write through it; which backend sits behind it is decided once at startup.
var Data *store.Store

// InitStore selects the data backend. DATA_BACKEND=db (default) serves from
// the configured database; DATA_BACKEND=memory serves from an in-process
// mock seeded with fixture data, which resets on restart. The memory
// backend optionally emulates network latency with MOCK_LATENCY=true.
func InitStore() {
	backend := strings.ToLower(os.Getenv("DATA_BACKEND"))
	switch backend {
	case "", "db":
		InitDB()
		Data = store.NewGormStore(DB)
		log.Println("Data store: database backend")
	case "memory":
		opts := []store.MemoryOption{store.WithFixtures(store.Fixtures())}
		if strings.ToLower(os.Getenv("MOCK_LATENCY")) == "true" {
			opts = append(opts, store.WithLatency(200*time.Millisecond, 500*time.Millisecond))
		}
		Data = store.NewMemoryStore(opts...)
		log.Println("Data store: in-memory mock backend (state resets on restart)")
	default:
		log.Fatalf("Unknown DATA_BACKEND %q (want db or memory)", backend)
	}
}
