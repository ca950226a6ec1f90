package revlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-revstore/revlog"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     revlog.Kind
		expected string
	}{
		{"KindCreate", revlog.KindCreate, "Create"},
		{"KindUpdate", revlog.KindUpdate, "Update"},
		{"KindDelete", revlog.KindDelete, "Delete"},
		{"UnknownKind", revlog.Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}
