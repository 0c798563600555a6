package memory

import (
	"sync"
	"testing"

	"hydromate/internal/domain"
	"hydromate/internal/repository"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestProfileRepo_InitAndSnapshot(t *testing.T) {
	repo := NewProfileRepo()

	got := repo.Init(123, domain.Profile{WeightKG: 70, City: "London"})
	assert.Equal(t, int64(123), got.UserID)
	assert.Equal(t, 70.0, got.WeightKG)

	snap, err := repo.Snapshot(123)
	assert.NoError(t, err)
	assert.Equal(t, "London", snap.City)
}

func TestProfileRepo_SnapshotNotFound(t *testing.T) {
	repo := NewProfileRepo()

	_, err := repo.Snapshot(999)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepo_UpdateNotFound(t *testing.T) {
	repo := NewProfileRepo()

	_, err := repo.Update(999, func(p *domain.Profile) {
		p.WaterDrunkML += 100
	})
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepo_InitReplacesProfile(t *testing.T) {
	repo := NewProfileRepo()

	repo.Init(123, domain.Profile{
		WeightKG:         90,
		WaterDrunkML:     500,
		CaloriesConsumed: 300,
		CaloriesBurned:   100,
		PendingFood:      &domain.PendingFood{Name: "apple", CaloriesPer100g: 52},
	})

	got := repo.Init(123, domain.Profile{WeightKG: 70})

	assert.Equal(t, 70.0, got.WeightKG)
	assert.Zero(t, got.WaterDrunkML)
	assert.Zero(t, got.CaloriesConsumed)
	assert.Zero(t, got.CaloriesBurned)
	assert.Nil(t, got.PendingFood)
}

func TestProfileRepo_SnapshotIsDetached(t *testing.T) {
	repo := NewProfileRepo()
	repo.Init(123, domain.Profile{PendingFood: &domain.PendingFood{Name: "apple", CaloriesPer100g: 52}})

	snap, err := repo.Snapshot(123)
	assert.NoError(t, err)

	// Mutating the snapshot must not leak into the store.
	snap.PendingFood.Name = "banana"
	snap.WaterDrunkML = 9000

	again, err := repo.Snapshot(123)
	assert.NoError(t, err)
	assert.Equal(t, "apple", again.PendingFood.Name)
	assert.Zero(t, again.WaterDrunkML)
}

func TestProfileRepo_ConcurrentUpdatesSameUser(t *testing.T) {
	repo := NewProfileRepo()
	repo.Init(123, domain.Profile{})

	const workers = 50
	const perWorker = 20

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_, err := repo.Update(123, func(p *domain.Profile) {
					p.WaterDrunkML += 10
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	snap, err := repo.Snapshot(123)
	assert.NoError(t, err)
	assert.Equal(t, float64(workers*perWorker*10), snap.WaterDrunkML)
}

func TestProfileRepo_ConcurrentDistinctUsers(t *testing.T) {
	repo := NewProfileRepo()

	const users = 20
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			repo.Init(id, domain.Profile{})
			for j := 0; j < 10; j++ {
				_, err := repo.Update(id, func(p *domain.Profile) {
					p.CaloriesConsumed += 1
				})
				assert.NoError(t, err)
			}
		}(int64(i + 1))
	}
	wg.Wait()

	assert.Equal(t, users, repo.Count())
	for i := 1; i <= users; i++ {
		snap, err := repo.Snapshot(int64(i))
		assert.NoError(t, err)
		assert.Equal(t, 10.0, snap.CaloriesConsumed)
	}
}

func TestProfileRepo_Exists(t *testing.T) {
	repo := NewProfileRepo()

	assert.False(t, repo.Exists(123))
	repo.Init(123, domain.Profile{})
	assert.True(t, repo.Exists(123))
}
