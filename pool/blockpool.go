// File: pool/blockpool.go
// Package pool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Size-class block recycling: released blocks are cleared and parked in a
// per-class FIFO until an allocation of the same class asks for them.

package pool

import (
	"io"
	"math/bits"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/eapache/queue"
	"golang.org/x/sys/cpu"

	"github.com/momentics/dynarray/api"
)

const (
	defaultMaxRetained = 64
	defaultMaxClass    = 1 << 20
)

// blockCounters are updated on every Allocate/Free; padded so concurrent
// users of one pool do not false-share with the free-list lock.
type blockCounters struct {
	_          cpu.CacheLinePad
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	reused     atomic.Int64
	dropped    atomic.Int64
	_          cpu.CacheLinePad
}

// BlockPool recycles element blocks by power-of-two size class.
// It is safe for concurrent use.
type BlockPool[T any] struct {
	mu      sync.Mutex
	classes map[int]*queue.Queue // class size -> parked []T blocks

	maxRetained int
	maxClass    int
	logger      *log.Logger

	stats blockCounters
}

// BlockPoolOption customizes a BlockPool.
type BlockPoolOption func(*blockPoolConfig)

type blockPoolConfig struct {
	maxRetained int
	maxClass    int
	logger      *log.Logger
}

// WithMaxRetained bounds how many free blocks each class keeps.
func WithMaxRetained(n int) BlockPoolOption {
	return func(c *blockPoolConfig) {
		c.maxRetained = n
	}
}

// WithMaxClass sets the largest block (in elements) that is recycled.
// Bigger requests are allocated exactly and dropped on Free.
func WithMaxClass(n int) BlockPoolOption {
	return func(c *blockPoolConfig) {
		c.maxClass = n
	}
}

// WithLogger routes pool diagnostics to l.
func WithLogger(l *log.Logger) BlockPoolOption {
	return func(c *blockPoolConfig) {
		c.logger = l
	}
}

// NewBlockPool creates an empty pool.
func NewBlockPool[T any](opts ...BlockPoolOption) *BlockPool[T] {
	cfg := blockPoolConfig{
		maxRetained: defaultMaxRetained,
		maxClass:    defaultMaxClass,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.maxRetained < 0 {
		cfg.maxRetained = 0
	}
	return &BlockPool[T]{
		classes:     make(map[int]*queue.Queue),
		maxRetained: cfg.maxRetained,
		maxClass:    cfg.maxClass,
		logger:      cfg.logger,
	}
}

// classOf returns the smallest power of two >= n (n > 0).
func classOf(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Allocate returns a zero-valued block with len == n. Blocks within the
// recyclable range have cap equal to their size class.
func (p *BlockPool[T]) Allocate(n int) []T {
	if n == 0 {
		return nil
	}
	p.stats.totalAlloc.Add(1)
	class := classOf(n)
	if class > p.maxClass {
		return make([]T, n)
	}

	p.mu.Lock()
	q := p.classes[class]
	if q != nil && q.Length() > 0 {
		block := q.Remove().([]T)
		p.mu.Unlock()
		p.stats.reused.Add(1)
		return block[:n]
	}
	p.mu.Unlock()
	return make([]T, n, class)
}

// Free clears block and parks it for reuse when its class has room.
func (p *BlockPool[T]) Free(block []T) {
	if block == nil {
		return
	}
	p.stats.totalFree.Add(1)
	class := cap(block)
	if class > p.maxClass || class != classOf(class) {
		p.drop(class, "unpooled size")
		return
	}
	block = block[:class]
	clear(block)

	p.mu.Lock()
	q := p.classes[class]
	if q == nil {
		q = queue.New()
		p.classes[class] = q
	}
	if q.Length() >= p.maxRetained {
		p.mu.Unlock()
		p.drop(class, "class full")
		return
	}
	q.Add(block)
	p.mu.Unlock()
}

func (p *BlockPool[T]) drop(class int, reason string) {
	p.stats.dropped.Add(1)
	p.logger.Debug("block dropped", "class", class, "reason", reason)
}

// Drain releases every parked block to the GC.
func (p *BlockPool[T]) Drain() {
	p.mu.Lock()
	parked := 0
	for class, q := range p.classes {
		parked += q.Length()
		delete(p.classes, class)
	}
	p.mu.Unlock()
	p.logger.Debug("pool drained", "blocks", parked)
}

// Stats returns a snapshot of pool counters.
func (p *BlockPool[T]) Stats() api.AllocatorStats {
	alloc := p.stats.totalAlloc.Load()
	free := p.stats.totalFree.Load()

	p.mu.Lock()
	classes := make(map[int]int64, len(p.classes))
	for class, q := range p.classes {
		classes[class] = int64(q.Length())
	}
	p.mu.Unlock()

	return api.AllocatorStats{
		TotalAlloc: alloc,
		TotalFree:  free,
		Reused:     p.stats.reused.Load(),
		Dropped:    p.stats.dropped.Load(),
		InUse:      alloc - free,
		Classes:    classes,
	}
}

var _ api.StatsAllocator[int] = (*BlockPool[int])(nil)
