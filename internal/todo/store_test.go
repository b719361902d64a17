package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
)

func openWith(t *testing.T, tasks []model.Task) (*Store, *jsonstore.MemoryBackend) {
	t.Helper()
	var raw []byte
	if tasks != nil {
		var err error
		raw, err = jsonstore.Encode(tasks)
		require.NoError(t, err)
	}
	b := jsonstore.NewMemoryBackend(raw)
	s, err := Open(b, nil)
	require.NoError(t, err)
	return s, b
}

func persisted(t *testing.T, b *jsonstore.MemoryBackend) []model.Task {
	t.Helper()
	got, err := jsonstore.Decode(b.Bytes())
	require.NoError(t, err)
	return got
}

func TestOpenMissingOrMalformedIsEmpty(t *testing.T) {
	for name, b := range map[string]*jsonstore.MemoryBackend{
		"missing":   jsonstore.NewMemoryBackend(nil),
		"empty":     jsonstore.NewMemoryBackend([]byte{}),
		"malformed": jsonstore.NewMemoryBackend([]byte("{not json")),
	} {
		t.Run(name, func(t *testing.T) {
			s, err := Open(b, nil)
			require.NoError(t, err)
			assert.Equal(t, 0, s.Len())
			assert.True(t, s.List().Empty())
			assert.Equal(t, 0, b.Writes())
		})
	}
}

func TestOpenReadFailureIsIO(t *testing.T) {
	_, err := Open(jsonstore.NewFileBackend(t.TempDir()), nil)
	require.ErrorIs(t, err, ErrIO)
	assert.Equal(t, KindIO, KindOf(err))
}

func TestAddAppends(t *testing.T) {
	before := []model.Task{{Description: "Task 1"}, {Description: "Task 2", Completed: true}}
	s, b := openWith(t, before)

	task, err := s.Add("Task 3")
	require.NoError(t, err)
	assert.Equal(t, model.Task{Description: "Task 3"}, task)

	want := append(append([]model.Task(nil), before...), model.Task{Description: "Task 3"})
	assert.Equal(t, want, s.Tasks())
	assert.Equal(t, want, persisted(t, b))
}

func TestAddAcceptsDescriptionAsGiven(t *testing.T) {
	s, _ := openWith(t, nil)

	_, err := s.Add("  spaced  ")
	require.NoError(t, err)
	assert.Equal(t, "  spaced  ", s.Tasks()[0].Description)
}

func TestCompleteIsIdempotent(t *testing.T) {
	s, b := openWith(t, []model.Task{{Description: "a"}, {Description: "b"}})

	res, err := s.Complete(2)
	require.NoError(t, err)
	assert.False(t, res.AlreadyCompleted)
	assert.Equal(t, "b", res.Task.Description)
	once := b.Bytes()
	require.Equal(t, 1, b.Writes())

	res, err = s.Complete(2)
	require.NoError(t, err)
	assert.True(t, res.AlreadyCompleted)
	assert.Equal(t, 1, b.Writes(), "no-op must not rewrite")
	assert.Equal(t, once, b.Bytes())
	assert.Equal(t, []model.Task{{Description: "a"}, {Description: "b", Completed: true}}, persisted(t, b))
}

func TestCompleteBounds(t *testing.T) {
	s, b := openWith(t, []model.Task{{Description: "a"}, {Description: "b"}, {Description: "c"}})

	for _, idx := range []int{-1, 0, 4, 100} {
		_, err := s.Complete(idx)
		require.ErrorIs(t, err, ErrOutOfBounds, "index %d", idx)
	}
	for idx := 1; idx <= 3; idx++ {
		_, err := s.Complete(idx)
		require.NoError(t, err, "index %d", idx)
	}
	assert.Equal(t, 3, b.Writes())
}

func TestCompleteOnEmptyStore(t *testing.T) {
	s, _ := openWith(t, nil)

	_, err := s.Complete(1)
	require.ErrorIs(t, err, ErrOutOfBounds)
	assert.EqualError(t, err, "complete: index out of bounds: have 0, got 1")
}

func TestDeleteCompleted(t *testing.T) {
	s, b := openWith(t, []model.Task{
		{Description: "a", Completed: true},
		{Description: "b"},
		{Description: "c", Completed: true},
		{Description: "d"},
	})

	n, err := s.DeleteCompleted()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	want := []model.Task{{Description: "b"}, {Description: "d"}}
	assert.Equal(t, want, s.Tasks())
	assert.Equal(t, want, persisted(t, b))
	for _, task := range s.Tasks() {
		assert.False(t, task.Completed)
	}
}

func TestDeleteCompletedNothingToDelete(t *testing.T) {
	for name, tasks := range map[string][]model.Task{
		"empty":         nil,
		"none complete": {{Description: "a"}, {Description: "b"}},
	} {
		t.Run(name, func(t *testing.T) {
			s, b := openWith(t, tasks)
			writes := b.Writes()

			n, err := s.DeleteCompleted()
			require.ErrorIs(t, err, ErrNothingToDelete)
			assert.Zero(t, n)
			assert.Equal(t, writes, b.Writes())
			assert.Equal(t, len(tasks), s.Len())
		})
	}
}

func TestScenarioAddCompleteDelete(t *testing.T) {
	s, b := openWith(t, []model.Task{{Description: "Task 1"}, {Description: "Task 2", Completed: true}})

	_, err := s.Add("Task 3")
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	_, err = s.Complete(3)
	require.NoError(t, err)
	assert.True(t, s.Tasks()[2].Completed)

	n, err := s.DeleteCompleted()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []model.Task{{Description: "Task 1"}}, persisted(t, b))

	_, err = s.DeleteCompleted()
	require.ErrorIs(t, err, ErrNothingToDelete)
}

func TestReopenSeesPersistedState(t *testing.T) {
	s, b := openWith(t, nil)
	_, err := s.Add("a")
	require.NoError(t, err)
	_, err = s.Add("b")
	require.NoError(t, err)
	_, err = s.Complete(1)
	require.NoError(t, err)

	again, err := Open(b, nil)
	require.NoError(t, err)
	assert.Equal(t, s.Tasks(), again.Tasks())
}

func TestTasksReturnsCopy(t *testing.T) {
	s, _ := openWith(t, []model.Task{{Description: "a"}})

	got := s.Tasks()
	got[0].Completed = true
	assert.False(t, s.Tasks()[0].Completed)
}
