package game

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"HighStakes/services/poker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededManager() *Manager {
	var seed int64
	return NewManager(func() poker.RandomSource {
		seed++
		return rand.New(rand.NewSource(seed))
	})
}

func TestManager_Lifecycle(t *testing.T) {
	m := seededManager()
	st := m.Create()
	assert.Equal(t, 1, m.Len())
	assert.Len(t, st.Hand, poker.HandSize)

	got, err := m.Get(st.ID)
	require.NoError(t, err)
	assert.Equal(t, st, got)

	require.NoError(t, m.Delete(st.ID))
	assert.Zero(t, m.Len())

	_, err = m.Get(st.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, m.Delete(st.ID), ErrSessionNotFound)
	assert.ErrorIs(t, m.With(st.ID, func(*Session) error { return nil }), ErrSessionNotFound)
}

func TestManager_WithPassesErrorsThrough(t *testing.T) {
	m := seededManager()
	st := m.Create()

	err := m.With(st.ID, func(s *Session) error {
		_, err := s.Play()
		return err
	})
	assert.ErrorIs(t, err, poker.ErrEmptySelection)
}

func TestManager_WithSerializesARun(t *testing.T) {
	m := seededManager()
	st := m.Create()

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = m.With(st.ID, func(s *Session) error {
				if err := s.Select(i%poker.HandSize, true); err != nil {
					return err
				}
				_, err := s.Discard()
				return err
			})
		}(i)
	}
	wg.Wait()

	require.NoError(t, m.With(st.ID, func(s *Session) error {
		assert.Equal(t, poker.FullDeckLen, s.CardsAccounted())
		assert.Equal(t, 40, s.Discards)
		return nil
	}))
}

func TestManager_Prune(t *testing.T) {
	m := seededManager()
	old := m.Create()
	fresh := m.Create()

	m.sessions[old.ID].lastActive = time.Now().Add(-2 * time.Hour)

	assert.Equal(t, 1, m.Prune(time.Hour))
	_, err := m.Get(old.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get(fresh.ID)
	assert.NoError(t, err)
}

// A run used between the idle scan and its deletion is kept.
func TestManager_PruneKeepsARunUsedAfterTheScan(t *testing.T) {
	m := seededManager()
	st := m.Create()
	m.sessions[st.ID].lastActive = time.Now().Add(-2 * time.Hour)
	cutoff := time.Now().Add(-time.Hour)

	_, err := m.Get(st.ID)
	require.NoError(t, err)

	assert.False(t, m.deleteIfIdle(st.ID, cutoff))
	assert.Equal(t, 1, m.Len())

	assert.True(t, m.deleteIfIdle(st.ID, time.Now().Add(time.Hour)))
	assert.Zero(t, m.Len())
	assert.False(t, m.deleteIfIdle(st.ID, time.Now().Add(time.Hour)))
}

func TestManager_OnDelete(t *testing.T) {
	m := seededManager()
	var deleted []string
	m.OnDelete(func(id string) { deleted = append(deleted, id) })

	a := m.Create()
	b := m.Create()
	require.NoError(t, m.Delete(a.ID))
	assert.ErrorIs(t, m.Delete(a.ID), ErrSessionNotFound)

	m.sessions[b.ID].lastActive = time.Now().Add(-time.Hour)
	m.Prune(time.Minute)

	assert.Equal(t, []string{a.ID, b.ID}, deleted)
}
