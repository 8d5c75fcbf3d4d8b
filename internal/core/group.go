package core

// GroupRows partitions rows into consecutive groups of size rows, in file
// order. The last group holds whatever remains and may be shorter.
// A size below 1 is treated as 1.
func GroupRows(rows []Row, size int) []Group {
	if size < 1 {
		size = 1
	}

	groups := make([]Group, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		groups = append(groups, Group{Index: len(groups), Rows: rows[start:end]})
	}
	return groups
}
