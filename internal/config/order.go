package config

// defaultUnitOrder is the curated reading order of the stock corpus. It
// encodes pedagogical sequencing; units on disk that are not listed here are
// appended after the curated ones.
func defaultUnitOrder() []string {
	return []string{
		"data-structures-algorithms-101",
		"system-design-101",

		// Core data structures
		"hashing-the-universal-filing-system",
		"sorting-creating-order-from-chaos",
		"heap-data-structures-the-priority-expert",
		"trie-structures-the-autocomplete-expert",
		"b-trees",
		"bloom-filters",
		"skip-lists-the-probabilistic-search-tree",
		"union-find-the-social-network-analyzer",
		"fenwick-trees-the-efficient-summation-machine",
		"segment-trees-the-range-query-specialist",
		"adaptive-data-structures",
		"rope-data-structures-the-string-splicer",
		"radix-trees-the-compressed-prefix-tree",
		"suffix-arrays-the-string-search-specialist",
		"merkle-trees-the-fingerprint-of-data",
		"copy-on-write",
		"delta-compression",
		"lockless-data-structures-concurrency-without-waiting",

		// System optimization
		"caching",
		"batching",
		"compression",
		"columnar-storage",
		"indexing-the-ultimate-table-of-contents",
		"inverted-indexes-the-heart-of-search-engines",
		"ring-buffers-the-circular-conveyor-belt",
		"lsm-trees-making-writes-fast-again",
		"partitioning-the-art-of-slicing-data",
		"sharding-slicing-the-monolith",
		"spatial-indexing-finding-your-place-in-the-world",
		"time-series-databases-the-pulse-of-data",

		// Distributed systems
		"consistent-hashing",
		"append-only-logs",
		"crdts-agreeing-without-asking",
		"event-sourcing",
		"in-memory-storage-the-need-for-speed",
		"materialized-views-the-pre-calculated-answer",
		"probabilistic-data-structures-good-enough-is-perfect",
		"replication-dont-put-all-your-eggs-in-one-basket",
		"write-ahead-logging-wal-durability-without-delay",
	}
}

// defaultFileOrder is the curated per-unit ordering of secondary documents.
// Units rarely contain all of these; missing entries are skipped.
func defaultFileOrder() []string {
	return []string{
		"01-concepts-01-the-core-problem.md",
		"01-concepts-02-the-guiding-philosophy.md",
		"01-concepts-03-key-abstractions.md",
		"02-guides-01-getting-started.md",
		"02-guides-02-essential-patterns.md",
		"03-deep-dive-01-complexity-analysis.md",
		"03-deep-dive-02-data-structure-design.md",
		"04-python-implementation.md",
		"05-rust-implementation.md",
		"06-go-implementation.md",
		"07-cpp-implementation.md",
		"04-rust-implementation.md",
		"04-sql-examples.md",
	}
}
