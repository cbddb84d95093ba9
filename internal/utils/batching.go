package utils

// SplitIntoBatches partitions items into consecutive batches of batchSize.
// The final batch holds the remainder and may be shorter.
func SplitIntoBatches[T any](items []T, batchSize int) [][]T {
	if batchSize <= 0 || len(items) == 0 {
		return nil
	}

	batches := make([][]T, 0, (len(items)+batchSize-1)/batchSize)
	for start := 0; start < len(items); start += batchSize {
		end := start + batchSize
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}
