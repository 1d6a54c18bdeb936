package boxkit

// invertTable derives the functional inverse of a bijective index table so
// that inv[table[i]] == i. The same routine serves both the 16-entry nibble
// table and the 8-entry bit-position table. Entries must form a bijection on
// [0,len(table)); an out-of-range or duplicate entry yields a ConfigError
// instead of a silently wrong mapping.
func invertTable(kind string, table []byte) ([]byte, error) {
	inv := make([]byte, len(table))
	seen := make([]bool, len(table))
	for i, v := range table {
		if int(v) >= len(table) {
			return nil, &ConfigError{Kind: kind, Index: i, Value: v, Reason: "out of range"}
		}
		if seen[v] {
			return nil, &ConfigError{Kind: kind, Index: i, Value: v, Reason: "duplicate"}
		}
		seen[v] = true
		inv[v] = byte(i)
	}
	return inv, nil
}
