package bombtris

import (
	"math/rand/v2"
	"sync"
)

type PieceGetter interface {
	Next() PieceType
}

// RandomGetter draws every catalog variant with equal probability, independently on
// each call.
type RandomGetter struct {
	randomizer *rand.Rand
	types      []PieceType
}

func NewRandomGetter(seed int64) *RandomGetter {
	return &RandomGetter{
		randomizer: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		types:      PieceTypes,
	}
}

func (r *RandomGetter) Next() PieceType {
	return r.types[r.randomizer.IntN(len(r.types))]
}

// QueueGetter hands out pushed types in order. Once drained it keeps returning TypeO.
type QueueGetter struct {
	m     sync.Mutex
	queue []PieceType
}

func NewQueueGetter(types ...PieceType) *QueueGetter {
	return &QueueGetter{queue: append([]PieceType(nil), types...)}
}

func (q *QueueGetter) Next() PieceType {
	q.m.Lock()
	defer q.m.Unlock()

	if len(q.queue) == 0 {
		return TypeO
	}
	t := q.queue[0]
	q.queue = q.queue[1:]
	return t
}

func (q *QueueGetter) Push(types ...PieceType) {
	q.m.Lock()
	defer q.m.Unlock()
	q.queue = append(q.queue, types...)
}
