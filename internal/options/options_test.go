package options_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-revstore/internal/options"
)

type config struct {
	retries int
	delay   time.Duration
	name    string
}

type option func(*config)

func withRetries(n int) option {
	return func(c *config) { c.retries = n }
}

func withName(name string) option {
	return func(c *config) { c.name = name }
}

func TestApply(t *testing.T) {
	t.Parallel()

	defaults := config{retries: 10, delay: time.Millisecond, name: "default"}

	tests := []struct {
		name     string
		opts     []option
		expected config
	}{
		{
			name:     "no options",
			opts:     nil,
			expected: defaults,
		},
		{
			name:     "single option",
			opts:     []option{withRetries(3)},
			expected: config{retries: 3, delay: time.Millisecond, name: "default"},
		},
		{
			name:     "applied in order",
			opts:     []option{withName("first"), withRetries(1), withName("second")},
			expected: config{retries: 1, delay: time.Millisecond, name: "second"},
		},
		{
			name:     "nil option skipped",
			opts:     []option{nil, withRetries(5)},
			expected: config{retries: 5, delay: time.Millisecond, name: "default"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, options.Apply(defaults, tt.opts))
		})
	}
}

func TestApply_DefaultsUntouched(t *testing.T) {
	t.Parallel()

	defaults := config{retries: 10, delay: 0, name: ""}
	_ = options.Apply(defaults, []option{withRetries(1)})

	assert.Equal(t, 10, defaults.retries)
}
