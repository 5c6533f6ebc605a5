package cli

import (
	"testing"

	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/alexanderramin/todocat/internal/service"
	"github.com/alexanderramin/todocat/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTaskListView_EmptyStates(t *testing.T) {
	state := newSharedState(testApp(t))
	v := newTaskListView(state)
	assert.Contains(t, plain(v.View()), "タスクはありません。")

	state.App.Tasks.SetFilter(domain.CategoryPrivate)
	assert.Contains(t, plain(v.View()), "タスクはありません。", "an empty store reads the same under any filter")
}

func TestTaskListView_RendersVisibleRows(t *testing.T) {
	state := newSharedState(testApp(t, testutil.MixedSeeds()...))
	v := newTaskListView(state)

	out := plain(v.View())
	for _, s := range testutil.MixedSeeds() {
		assert.Contains(t, out, s.Text)
	}
	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "press a to add a task")
}

func TestTaskListView_WindowRowsFollowsCursor(t *testing.T) {
	var seeds []testutil.Seed
	for range 30 {
		seeds = append(seeds, testutil.NewSeed("task", domain.CategoryWork))
	}
	state := newSharedState(testApp(t, seeds...))
	state.Height = 20 // content height 15, 9 rows
	v := newTaskListView(state)

	assert.Equal(t, rowWindow{0, 9}, v.windowRows(30))

	v.cursor = 15
	w := v.windowRows(30)
	assert.True(t, w.start <= 15 && 15 < w.end)
	assert.Equal(t, 9, w.end-w.start)

	v.cursor = 29
	assert.Equal(t, rowWindow{21, 30}, v.windowRows(30))

	state.Height = 0
	assert.Equal(t, rowWindow{0, 30}, v.windowRows(30), "unknown height draws everything")
}

func TestTaskListView_FlashOnChange(t *testing.T) {
	state := newSharedState(testApp(t))
	v := newTaskListView(state)
	unsubscribe := state.App.Tasks.Subscribe(func(c service.StateChange) {
		v.applyChanges([]service.StateChange{c})
	})
	defer unsubscribe()

	state.App.Tasks.CreateTask("buy milk", domain.CategoryShopping)
	assert.Contains(t, plain(v.flash), "Added")
	assert.Contains(t, plain(v.flash), "buy milk")

	state.App.Tasks.DeleteTask(1)
	assert.Contains(t, plain(v.flash), "Deleted buy milk")
}
