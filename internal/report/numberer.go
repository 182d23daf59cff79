package report

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// MaxSerial is the largest serial a RandomNumberer hands out.
const MaxSerial = 999

// RandomNumberer draws FIR numbers of the form "N/YYYY" with N in [1, MaxSerial].
type RandomNumberer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomNumberer creates a numberer drawing from src. Pass a seeded source
// for reproducible numbers.
func NewRandomNumberer(src rand.Source) *RandomNumberer {
	return &RandomNumberer{rng: rand.New(src)}
}

// Next returns a random number for the year of now.
func (n *RandomNumberer) Next(now time.Time) string {
	n.mu.Lock()
	serial := n.rng.IntN(MaxSerial) + 1
	n.mu.Unlock()
	return fmt.Sprintf("%d/%d", serial, now.Year())
}

// SequenceNumberer hands out consecutive numbers starting at 1.
type SequenceNumberer struct {
	mu   sync.Mutex
	next int
}

// NewSequenceNumberer creates a numberer starting at 1.
func NewSequenceNumberer() *SequenceNumberer {
	return &SequenceNumberer{next: 1}
}

// Next returns the next serial for the year of now.
func (n *SequenceNumberer) Next(now time.Time) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	serial := n.next
	n.next++
	return fmt.Sprintf("%d/%d", serial, now.Year())
}
