// Package gflake provides a lightweight and efficient implementation of
// Snowflake identifiers in Go: compact, sortable, 64-bit IDs for entities
// in a distributed system.
//
// A Snowflake ID packs three fields into a single signed 64-bit integer:
//   - 41-bit timestamp (milliseconds since a fixed epoch)
//   - 10-bit machine ID (up to 1024 generating nodes)
//   - 12-bit sequence (up to 4096 IDs per millisecond per node)
//
// Because the timestamp occupies the high bits, IDs sort chronologically
// when compared as plain integers, making them ideal for:
//   - Database primary keys (improved B-tree performance)
//   - Distributed systems requiring time-ordered identifiers
//   - Event sourcing and audit logs
//   - Any scenario where chronological ordering matters
//
// Basic Usage:
//
//	// Generate a new ID with the default generator
//	id, err := gflake.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Build an ID from its parts
//	id, err := gflake.FromParts(1700000000000, 5, 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Extract fields from an ID
//	ms := id.Timestamp()
//	machine := id.MachineID()
//	seq := id.Sequence()
//
// Custom Generator:
//
//	// Create a generator with an explicitly provisioned machine ID
//	gen, err := gflake.NewGenerator(42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i := 0; i < 1000; i++ {
//	    id, err := gen.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // Use id...
//	}
//
// Thread Safety:
//
// All operations are thread-safe. The default generator can be used
// concurrently from multiple goroutines without additional synchronization.
//
// Layout Compliance:
//
// The bit layout follows the classic Twitter Snowflake scheme (41/10/12)
// bit-for-bit, so IDs interoperate with any component expecting that
// layout. Construction validates every field against its bit-width bound;
// decoding never fails, so IDs received from external sources can always
// be taken apart safely.
package gflake
