package canteen

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeGenerator_Unique(t *testing.T) {
	const n = 1000

	gen := &codeGenerator{}
	codes := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes <- gen.Next(OrderCodePrefix)
		}()
	}
	wg.Wait()
	close(codes)

	seen := make(map[string]struct{}, n)
	for code := range codes {
		assert.True(t, strings.HasPrefix(code, OrderCodePrefix), "code %s", code)
		_, dup := seen[code]
		assert.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestCodeGenerator_Prefixes(t *testing.T) {
	gen := &codeGenerator{}

	order := gen.Next(OrderCodePrefix)
	recharge := gen.Next(RechargeCodePrefix)

	assert.True(t, strings.HasPrefix(order, "ORD"))
	assert.True(t, strings.HasPrefix(recharge, "RCH"))
	assert.NotEqual(t, order, recharge)
}
