package canteen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	OrderCodePrefix    = "ORD"
	RechargeCodePrefix = "RCH"
)

// codeGenerator issues human-readable transaction codes: a prefix, a
// millisecond tick that never goes backwards, a sequence tie-breaker for
// calls within the same tick, and a short random suffix. The unique index
// on the code column is the last line of defence across processes.
type codeGenerator struct {
	mu   sync.Mutex
	tick int64
	seq  uint32
}

func (g *codeGenerator) Next(prefix string) string {
	g.mu.Lock()
	now := time.Now().UnixMilli()
	if now <= g.tick {
		g.seq++
	} else {
		g.tick = now
		g.seq = 0
	}
	tick, seq := g.tick, g.seq
	g.mu.Unlock()

	suffix := make([]byte, 2)
	_, _ = rand.Read(suffix)

	return fmt.Sprintf("%s%d%04d%s", prefix, tick, seq, strings.ToUpper(hex.EncodeToString(suffix)))
}
