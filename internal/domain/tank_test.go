package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquarium-tank-api/pkg/opt"
)

func restoredTank() *Tank {
	owner := int64(7)
	created := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	return RestoreTank(1, TankProps{Name: "Reef", Width: 60, Height: 40, Length: 30, OwnerID: &owner}, created, created)
}

func TestNewTankDefaultsTimestamps(t *testing.T) {
	c := useClock(t)
	tk := NewTank(TankProps{Name: "Nano", Width: 30, Height: 30, Length: 30})
	assert.Equal(t, int64(0), tk.ID())
	assert.Equal(t, c.t, tk.CreatedAt())
	assert.Equal(t, tk.CreatedAt(), tk.UpdatedAt())
}

func TestTankResizeTouchesOnce(t *testing.T) {
	tk := restoredTank()
	c := useClock(t)

	tk.Resize(80, 50, 40)

	assert.Equal(t, 1, c.calls)
	assert.Equal(t, c.t, tk.UpdatedAt())
	assert.Equal(t, 80, tk.Width())
	assert.Equal(t, 50, tk.Height())
	assert.Equal(t, 40, tk.Length())
}

func TestTankNoopMutationStillTouches(t *testing.T) {
	tk := restoredTank()
	before := tk.UpdatedAt()
	c := useClock(t)

	tk.Rename(tk.Name())

	assert.Equal(t, 1, c.calls)
	assert.True(t, tk.UpdatedAt().After(before))
}

func TestTankIdentityIsStable(t *testing.T) {
	tk := restoredTank()
	id, created := tk.ID(), tk.CreatedAt()
	useClock(t)

	tk.Rename("x")
	tk.Resize(1, 1, 1)
	tk.RemoveFromUser()

	assert.Equal(t, id, tk.ID())
	assert.Equal(t, created, tk.CreatedAt())
}

func TestTankApplyNameOnly(t *testing.T) {
	tk := restoredTank()
	c := useClock(t)

	tk.Apply(TankPatch{Name: opt.Some("X")})

	assert.Equal(t, 1, c.calls)
	assert.Equal(t, "X", tk.Name())
	assert.Equal(t, 60, tk.Width())
	assert.Equal(t, 40, tk.Height())
	assert.Equal(t, 30, tk.Length())
	require.NotNil(t, tk.OwnerID())
	assert.Equal(t, int64(7), *tk.OwnerID())
}

func TestTankApplyPartialDimensionsMerges(t *testing.T) {
	tk := restoredTank()
	c := useClock(t)

	tk.Apply(TankPatch{Height: opt.Some(45)})

	assert.Equal(t, 1, c.calls)
	assert.Equal(t, 60, tk.Width())
	assert.Equal(t, 45, tk.Height())
	assert.Equal(t, 30, tk.Length())
}

func TestTankAssignThenRemoveOwner(t *testing.T) {
	tk := NewTank(TankProps{Name: "Shrimp", Width: 20, Height: 20, Length: 20})
	require.Nil(t, tk.OwnerID())
	c := useClock(t)

	tk.AssignToUser(3)
	require.NotNil(t, tk.OwnerID())
	assert.Equal(t, int64(3), *tk.OwnerID())
	assert.Equal(t, 1, c.calls)
	afterAssign := tk.UpdatedAt()

	tk.RemoveFromUser()
	assert.Nil(t, tk.OwnerID())
	assert.Equal(t, 2, c.calls)
	assert.True(t, tk.UpdatedAt().After(afterAssign))
}

func TestTankPropsAreCopies(t *testing.T) {
	tk := restoredTank()
	p := tk.Props()
	*p.OwnerID = 99
	p.Name = "changed"

	assert.Equal(t, int64(7), *tk.OwnerID())
	assert.Equal(t, "Reef", tk.Name())
}

func TestTankVolume(t *testing.T) {
	tk := restoredTank()
	assert.InDelta(t, 72.0, tk.Volume(), 0.001)

	tk.ChangeWaterVolume(0)
	assert.Equal(t, 0.0, tk.Volume())
}

func TestTankPatchMergeLeavesAbsentFields(t *testing.T) {
	props := restoredTank().Props()
	merged := TankPatch{Width: opt.Some(100), OwnerID: opt.Some[*int64](nil)}.Merge(props)

	assert.Equal(t, 100, merged.Width)
	assert.Equal(t, 40, merged.Height)
	assert.Equal(t, "Reef", merged.Name)
	assert.Nil(t, merged.OwnerID)
}
