package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomQuote(t *testing.T) {
	allowed := make(map[string]bool, len(motivationalQuotes))
	for _, q := range motivationalQuotes {
		allowed[q] = true
	}

	for i := 0; i < 50; i++ {
		assert.True(t, allowed[RandomQuote()])
	}
}
