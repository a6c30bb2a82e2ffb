package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/pkg/opt"
)

func TestTankRepoLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewTankRepo()
	owner := int64(1)

	for i := 0; i < 25; i++ {
		_, err := repo.Save(ctx, domain.NewTank(domain.TankProps{Name: "t", Width: 1, Height: 1, Length: 1, OwnerID: &owner}))
		require.NoError(t, err)
	}
	_, err := repo.Save(ctx, domain.NewTank(domain.TankProps{Name: "unowned", Width: 1, Height: 1, Length: 1}))
	require.NoError(t, err)

	page, err := repo.PageByOwner(ctx, owner, 3, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 5)
	assert.Equal(t, int64(21), page.Items[0].ID())
	assert.Equal(t, int64(25), page.Meta.Total)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 26)

	missing, err := repo.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repo.Update(ctx, 99, domain.TankPatch{Name: opt.Some("x")})
	assert.True(t, domain.IsNotFound(err))
	assert.True(t, domain.IsNotFound(repo.Delete(ctx, 99)))
}

func TestTankRepoUpdateWritesOnlyPresentFields(t *testing.T) {
	ctx := context.Background()
	repo := NewTankRepo()
	owner := int64(4)
	saved, err := repo.Save(ctx, domain.NewTank(domain.TankProps{Name: "a", Width: 10, Height: 20, Length: 30, OwnerID: &owner}))
	require.NoError(t, err)

	got, err := repo.Update(ctx, saved.ID(), domain.TankPatch{Name: opt.Some("b")})
	require.NoError(t, err)
	assert.Equal(t, "b", got.Name())
	assert.Equal(t, 10, got.Width())
	require.NotNil(t, got.OwnerID())
	assert.Equal(t, owner, *got.OwnerID())
	assert.Equal(t, saved.CreatedAt(), got.CreatedAt())

	got, err = repo.Update(ctx, saved.ID(), domain.TankPatch{OwnerID: opt.Some[*int64](nil)})
	require.NoError(t, err)
	assert.Nil(t, got.OwnerID())
}

func TestStoredEntitiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewFishSpeciesRepo()
	saved, err := repo.Save(ctx, domain.NewFishSpecies(domain.FishSpeciesProps{NameEn: "Guppy", Aliases: []string{"Millionfish"}}))
	require.NoError(t, err)

	saved.AddAlias("Rainbow fish")

	again, err := repo.FindByID(ctx, saved.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"Millionfish"}, again.Aliases())
}

func TestFishSpeciesRepoQueries(t *testing.T) {
	ctx := context.Background()
	repo := NewFishSpeciesRepo()
	_, err := repo.Save(ctx, domain.NewFishSpecies(domain.FishSpeciesProps{NameEn: "Neon", TempMin: 20, TempMax: 26, PhMin: 6, PhMax: 7, CareLevel: domain.CareEasy, Temperament: domain.Peaceful}))
	require.NoError(t, err)
	_, err = repo.Save(ctx, domain.NewFishSpecies(domain.FishSpeciesProps{NameEn: "Oscar", TempMin: 23, TempMax: 28, PhMin: 6, PhMax: 8, CareLevel: domain.CareMedium, Temperament: domain.Aggressive}))
	require.NoError(t, err)

	_, err = repo.Save(ctx, domain.NewFishSpecies(domain.FishSpeciesProps{NameEn: "Neon"}))
	var dup *domain.AlreadyExistsError
	assert.ErrorAs(t, err, &dup)

	found, err := repo.FindCompatible(ctx, domain.WaterRange{TempMin: 27, TempMax: 29, PhMin: 7, PhMax: 7.5})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Oscar", found[0].NameEn())

	easy, err := repo.FindByCareLevel(ctx, domain.CareEasy)
	require.NoError(t, err)
	require.Len(t, easy, 1)

	page, err := repo.Page(ctx, domain.SpeciesFilter{Temperament: domain.Aggressive}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Oscar", page.Items[0].NameEn())

	byName, err := repo.FindByNameEn(ctx, "Neon")
	require.NoError(t, err)
	require.NotNil(t, byName)
}

func TestUserRepoAuthIDUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()
	_, err := repo.Save(ctx, domain.NewUser("auth-1", nil))
	require.NoError(t, err)
	_, err = repo.Save(ctx, domain.NewUser("auth-1", nil))
	assert.Error(t, err)

	u, err := repo.FindByAuthID(ctx, "auth-1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int64(1), u.ID())
}

func TestFishSpeciesRepoConcurrentSaveKeepsNameUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewFishSpeciesRepo()

	const n = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		saved   int
		refused int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(ctx, domain.NewFishSpecies(domain.FishSpeciesProps{NameEn: "Guppy"}))
			mu.Lock()
			defer mu.Unlock()
			var dup *domain.AlreadyExistsError
			if errors.As(err, &dup) {
				refused++
			} else if err == nil {
				saved++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, saved)
	assert.Equal(t, n-1, refused)
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFishSpeciesRepoUpdateRejectsTakenName(t *testing.T) {
	ctx := context.Background()
	repo := NewFishSpeciesRepo()
	_, err := repo.Save(ctx, domain.NewFishSpecies(domain.FishSpeciesProps{NameEn: "Guppy"}))
	require.NoError(t, err)
	molly, err := repo.Save(ctx, domain.NewFishSpecies(domain.FishSpeciesProps{NameEn: "Molly"}))
	require.NoError(t, err)

	_, err = repo.Update(ctx, molly.ID(), domain.FishSpeciesPatch{NameEn: opt.Some("Guppy")})
	var dup *domain.AlreadyExistsError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Guppy", dup.Value)

	kept, err := repo.FindByID(ctx, molly.ID())
	require.NoError(t, err)
	assert.Equal(t, "Molly", kept.NameEn())

	renamed, err := repo.Update(ctx, molly.ID(), domain.FishSpeciesPatch{NameEn: opt.Some("Molly")})
	require.NoError(t, err)
	assert.Equal(t, "Molly", renamed.NameEn())
}
