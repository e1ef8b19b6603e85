package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuNumbering(t *testing.T) {
	m := NewMenu(4, 22)
	m.AddOption("Upgrade for $10.00")
	m.AddOption("Sell")
	assert.Equal(t, []string{"1. Upgrade for $10.00", "2. Sell"}, m.Options())

	m.ClearOptions()
	assert.Empty(t, m.Options())
	m.AddOption("Again")
	assert.Equal(t, []string{"1. Again"}, m.Options())
}

func TestStateRebuildMenu(t *testing.T) {
	st := State{
		Container: NewBusinessContainer(0, 0,
			NewBusiness("a", time.Second, 1, 10),
			NewBusiness("b", time.Second, 1, 62.5),
		),
		Menu: NewMenu(4, 22),
	}

	st.RebuildMenu()
	assert.Equal(t, []string{"1. Upgrade for $10.00"}, st.Menu.Options())

	st.Container.Select(Right)
	st.RebuildMenu()
	assert.Equal(t, []string{"1. Upgrade for $62.50"}, st.Menu.Options())
}

func TestStateCloneIsDeep(t *testing.T) {
	st := State{
		Account:   NewAccount(5),
		Container: NewBusinessContainer(0, 0, NewBusiness("a", time.Second, 1, 10)),
		Menu:      NewMenu(1, 1),
	}
	st.RebuildMenu()

	snap := st.Clone()
	st.Account.Earn(10)
	st.Container.SelectedBusiness().Upgrade()
	st.Menu.ClearOptions()

	assert.Equal(t, 5.0, snap.Account.Cash())
	require.NotNil(t, snap.Container)
	assert.Equal(t, 1, snap.Container.At(0).Level())
	assert.Equal(t, []string{"1. Upgrade for $10.00"}, snap.Menu.Options())
}

func TestStateZeroValues(t *testing.T) {
	var st State
	assert.Zero(t, st.Account.Cash())
	assert.Nil(t, st.Container)

	st.RebuildMenu()
	assert.Empty(t, st.Menu.Options())
}
