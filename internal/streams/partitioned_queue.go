package streams

import (
	"encoding/binary"
	"hash/fnv"
)

// PartitionedQueue routes messages to a fixed set of buffered channels by
// hashing a partition key. Messages sharing a key land on the same partition,
// so a single worker per partition sees them in publish order.
type PartitionedQueue[T any] struct {
	partitions []chan T
}

const (
	defaultNumPartitions = 8
	defaultBuffer        = 256
)

func NewPartitionedQueue[T any]() *PartitionedQueue[T] {
	return NewPartitionedQueueSized[T](defaultNumPartitions, defaultBuffer)
}

func NewPartitionedQueueSized[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	if numPartitions <= 0 {
		numPartitions = defaultNumPartitions
	}
	partitions := make([]chan T, numPartitions)
	for i := range partitions {
		partitions[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: partitions}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Partition exposes the receive side of one partition for a worker to drain.
func (queue *PartitionedQueue[T]) Partition(i int) <-chan T { return queue.partitions[i] }

func (queue *PartitionedQueue[T]) Publish(partitionKey string, msg T) {
	queue.partitions[partitionIndex(partitionKey, len(queue.partitions))] <- msg
}

func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	v := binary.LittleEndian.Uint32(hash.Sum(nil))
	return int(v % uint32(n))
}
