package wizard

import (
	"testing"
	"time"

	"github.com/directpavers/paverquote/pkg/domain"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGetDelete(t *testing.T) {
	store := NewStore(time.Minute, time.Minute)

	store.Put(&Session{ID: "sess-1", Step: StepWelcome})
	assert.Equal(t, 1, store.Count())

	sess, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, StepWelcome, sess.Step)

	store.Delete("sess-1")
	_, err = store.Get("sess-1")
	assert.True(t, domain.IsNotFound(err))
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(10*time.Millisecond, time.Hour)

	store.Put(&Session{ID: "sess-1", Step: StepWelcome})
	time.Sleep(20 * time.Millisecond)

	_, err := store.Get("sess-1")
	assert.True(t, domain.IsNotFound(err))
}

func TestStore_GetRefreshesTTL(t *testing.T) {
	store := NewStore(50*time.Millisecond, time.Hour)

	store.Put(&Session{ID: "sess-1", Step: StepWelcome})
	for i := 0; i < 3; i++ {
		time.Sleep(30 * time.Millisecond)
		_, err := store.Get("sess-1")
		require.NoError(t, err)
	}
}

func TestStore_UpdateIsIsolated(t *testing.T) {
	store := NewStore(time.Minute, time.Minute)
	store.Put(&Session{ID: "sess-1", Step: StepPhotos})

	// A failing update leaves the stored session untouched
	_, err := store.Update("sess-1", func(w *Session) error {
		w.Step = StepMeasurements
		return domain.NewValidationError("nope")
	})
	require.Error(t, err)

	sess, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, StepPhotos, sess.Step)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore(time.Minute, time.Minute)
	store.Put(&Session{
		ID:     "sess-1",
		Step:   StepPhotos,
		Photos: []PhotoEntry{{PhotoDataURL: "data:image/png;base64,AAAA"}},
		Zones:  []models.DeliveryZone{{ID: "tampa"}},
	})

	sess, err := store.Get("sess-1")
	require.NoError(t, err)
	sess.Photos[0].Done = true
	sess.Step = StepLaborQuote

	fresh, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.False(t, fresh.Photos[0].Done)
	assert.Equal(t, StepPhotos, fresh.Step)
}
