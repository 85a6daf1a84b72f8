package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop() {}

func TestRegistry_Ordering(t *testing.T) {
	r := New()
	r.BeginGroup("G1")
	r.AddTest("T1", noop)
	r.AddTest("T2", noop)
	r.BeginGroup("G2")
	r.AddTest("T3", noop)

	groups := r.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "G1", groups[0].Name)
	assert.Equal(t, "G2", groups[1].Name)
	require.Len(t, groups[0].Cases, 2)
	assert.Equal(t, "T1", groups[0].Cases[0].Name)
	assert.Equal(t, "T2", groups[0].Cases[1].Name)
	assert.Equal(t, "T3", groups[1].Cases[0].Name)
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_ReRegistration(t *testing.T) {
	r := New()
	r.BeginGroup("X")
	r.AddTest("old", noop)
	r.BeginGroup("Y")
	r.AddTest("y", noop)
	r.BeginGroup("X")
	r.AddTest("new", noop)

	groups := r.Groups()
	require.Len(t, groups, 2)

	// X keeps its first position, loses its old cases and is current again
	assert.Equal(t, "X", groups[0].Name)
	require.Len(t, groups[0].Cases, 1)
	assert.Equal(t, "new", groups[0].Cases[0].Name)
	assert.Equal(t, "Y", groups[1].Name)
}

func TestRegistry_EmptyGroupIsKept(t *testing.T) {
	r := New()
	r.BeginGroup("empty")

	groups := r.Groups()
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].Cases)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		call func(r *Registry)
		want error
	}{
		{
			name: "add test without group",
			call: func(r *Registry) { r.AddTest("orphan", noop) },
			want: ErrNoGroup,
		},
		{
			name: "empty group name",
			call: func(r *Registry) { r.BeginGroup("") },
			want: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var recovered any
			func() {
				defer func() { recovered = recover() }()
				tt.call(New())
			}()

			err, ok := recovered.(error)
			require.True(t, ok, "expected an error panic, got %v", recovered)
			assert.True(t, errors.Is(err, tt.want))

			var usage *UsageError
			assert.True(t, errors.As(err, &usage))
		})
	}
}

func TestRegistry_GroupsIsSnapshot(t *testing.T) {
	r := New()
	r.BeginGroup("G")
	r.AddTest("T1", noop)

	snapshot := r.Groups()
	r.AddTest("T2", noop)

	assert.Len(t, snapshot[0].Cases, 1)
	assert.Len(t, r.Groups()[0].Cases, 2)
}
