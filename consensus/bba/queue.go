package bba

import (
	"github.com/ground-x/bba/internal/cache"
)

// futureKey identifies one (peer, epoch) bucket of queued future messages.
type futureKey struct {
	peer  NodeID
	epoch uint32
}

type queuedMessage struct {
	peer NodeID
	msg  Message
}

// futureQueue buffers messages for epochs strictly greater than our own,
// bounded against a faulty peer flooding us with far-future or duplicate
// messages: at most `window` epochs ahead, at most `maxPerBucket` messages
// per (peer, epoch) pair, with the least-recently-touched bucket evicted
// first once `maxBuckets` distinct (peer, epoch) pairs are outstanding.
// Messages that fall outside either bound are silently dropped: protocol
// anomalies never raise an error.
type futureQueue struct {
	window       uint32
	maxPerBucket int
	buckets      *cache.Cache
}

const (
	defaultFutureWindow      = 3
	defaultMaxFutureBuckets  = 256
	defaultMaxMessagesPerBkt = 4
)

func newFutureQueue() *futureQueue {
	c, err := cache.New(cache.Config{Size: defaultMaxFutureBuckets})
	if err != nil {
		// Only fails for a non-positive size, which defaultMaxFutureBuckets
		// never is.
		panic(err)
	}
	return &futureQueue{
		window:       defaultFutureWindow,
		maxPerBucket: defaultMaxMessagesPerBkt,
		buckets:      c,
	}
}

// push buffers msg from peer, given the node's current epoch. Returns false
// if the message was dropped for being too far ahead or its bucket too full.
func (q *futureQueue) push(currentEpoch uint32, peer NodeID, msg Message) bool {
	if msg.Epoch > currentEpoch+q.window {
		return false
	}
	key := futureKey{peer: peer, epoch: msg.Epoch}
	var bucket []Message
	if v, ok := q.buckets.Get(key); ok {
		bucket = v.([]Message)
	}
	if len(bucket) >= q.maxPerBucket {
		return false
	}
	bucket = append(bucket, msg)
	q.buckets.Add(key, bucket)
	return true
}

// drainAll removes and returns every queued message, across all buckets, in
// insertion order within each bucket. Called after an epoch advances;
// replaying through handle_message will re-queue whatever is still future.
func (q *futureQueue) drainAll() []queuedMessage {
	var out []queuedMessage
	for _, rawKey := range q.buckets.Keys() {
		key := rawKey.(futureKey)
		v, ok := q.buckets.Peek(key)
		if !ok {
			continue
		}
		for _, m := range v.([]Message) {
			out = append(out, queuedMessage{peer: key.peer, msg: m})
		}
	}
	q.buckets.Purge()
	return out
}
