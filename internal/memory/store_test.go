package memory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/memcalc/internal/memory"
)

func Test_Store(t *testing.T) {
	for _, tc := range []storeTestCase{
		storeTest("accumulate",
			"init", func(t *testing.T, s *memory.Store) {
				require.Equal(t, 0, s.Len(), "expected empty store")
				require.Equal(t, []string{}, s.Names(), "expected no names")
				expectNotFound(t, s, "a")
			},

			"a += 5", func(t *testing.T, s *memory.Store) {
				require.Equal(t, 5.0, s.Update("a", 5), "expected new value")
				expectSlot(t, s, "a", 5)
			},

			"a += -2", func(t *testing.T, s *memory.Store) {
				require.Equal(t, 3.0, s.Update("a", -2), "expected new value")
				expectSlot(t, s, "a", 3)
			},

			"other slots unaffected", func(t *testing.T, s *memory.Store) {
				expectNotFound(t, s, "b")
				require.Equal(t, 1, s.Len())
			},
		),

		storeTest("zero valued slot exists",
			"a += 0", func(t *testing.T, s *memory.Store) {
				s.Update("a", 0)
				expectSlot(t, s, "a", 0)
				require.True(t, s.Has("a"), "expected slot to exist")
			},

			"a back to zero", func(t *testing.T, s *memory.Store) {
				s.Update("a", 4)
				s.Update("a", -4)
				expectSlot(t, s, "a", 0)
			},
		),

		storeTest("names",
			"case sensitive", func(t *testing.T, s *memory.Store) {
				s.Update("x", 1)
				s.Update("X", 2)
				expectSlot(t, s, "x", 1)
				expectSlot(t, s, "X", 2)
			},

			"empty name", func(t *testing.T, s *memory.Store) {
				expectNotFound(t, s, "")
				s.Update("", 7)
				expectSlot(t, s, "", 7)
			},

			"sorted snapshot", func(t *testing.T, s *memory.Store) {
				s.Update("b", 1)
				names := s.Names()
				require.Equal(t, []string{"", "X", "b", "x"}, names)
				names[0] = "mutated"
				require.Equal(t, []string{"", "X", "b", "x"}, s.Names(), "expected a copy")
			},
		),
	} {
		t.Run(tc.name, func(t *testing.T) {
			var s memory.Store
			defer func() {
				if t.Failed() {
					t.Logf("slots: %v", s.Names())
				}
			}()
			for _, step := range tc.steps {
				if !t.Run(step.name, func(t *testing.T) { step.f(t, &s) }) {
					break
				}
			}
		})
	}
}

func expectSlot(t *testing.T, s *memory.Store, name string, value float64) {
	val, err := s.Get(name)
	require.NoError(t, err, "unexpected get %q error", name)
	require.Equal(t, value, val, "expected value in %q", name)
	require.True(t, s.Has(name), "expected %q to exist", name)
}

func expectNotFound(t *testing.T, s *memory.Store, name string) {
	_, err := s.Get(name)
	require.Error(t, err, "expected get %q to fail", name)
	assert.True(t, errors.Is(err, memory.ErrNotFound), "expected ErrNotFound")
	var nf *memory.NotFoundError
	require.True(t, errors.As(err, &nf), "expected a *NotFoundError")
	assert.Equal(t, name, nf.Name)
	assert.False(t, s.Has(name), "expected %q to not exist", name)
}

func storeTest(name string, args ...interface{}) (tc storeTestCase) {
	tc.name = name
	for i := 0; i < len(args); i++ {
		var step storeTestStep
		step.name = args[i].(string)
		if i++; i >= len(args) {
			panic("storeTest: missing function argument after name")
		}
		step.f = args[i].(func(t *testing.T, s *memory.Store))
		tc.steps = append(tc.steps, step)
	}
	return tc
}

type storeTestCase struct {
	name  string
	steps []storeTestStep
}

type storeTestStep struct {
	name string
	f    func(t *testing.T, s *memory.Store)
}
