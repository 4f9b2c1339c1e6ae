package ds

// MakeChunks try to group elements within a slice into smaller "chunk",
// each contains n elements. For example,
//
//	MakeChunks([]int{1, 2, 3, 4, 5}, 2)
//
// should return this exact value:
//
//	[][]int{{1, 2}, {3, 4}, {5}}
//
// The chunks share the backing array of ts.
func MakeChunks[T any](ts []T, n int) [][]T {
	chunks := make([][]T, 0, len(ts)/n+1)
	for i := 0; i < len(ts); i += n {
		end := min(i+n, len(ts))
		chunks = append(chunks, ts[i:end])
	}
	return chunks
}
