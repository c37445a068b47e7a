package gallery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLightboxIsIndependentFromGallery(t *testing.T) {
	t.Parallel()

	seq, mainImage := twoColorProduct()
	g := New(seq, mainImage)
	require.NoError(t, g.SelectIndex(5))
	before := g.Displayed()

	lb := NewLightbox(seq, NewKeyDispatcher())
	lb.Open(g.Index())
	require.Equal(t, 5, lb.Index())

	for i := 0; i < 3; i++ {
		require.True(t, lb.Navigate(Next))
	}
	require.Equal(t, 8, lb.Index())
	require.Equal(t, before, g.Displayed())
	require.Equal(t, 5, g.Index())

	// and the other way round
	g.Navigate(Prev)
	require.Equal(t, 8, lb.Index())
}

func TestLightboxWrapsAround(t *testing.T) {
	t.Parallel()

	seq, _ := twoColorProduct()
	lb := NewLightbox(seq, nil)

	lb.Open(19)
	lb.Navigate(Next)
	require.Equal(t, 0, lb.Index())
	lb.Navigate(Prev)
	require.Equal(t, 19, lb.Index())
	require.Equal(t, "PI-10", lb.Current())
}

func TestLightboxOpenClampsUnknownIndex(t *testing.T) {
	t.Parallel()

	seq, _ := twoColorProduct()
	lb := NewLightbox(seq, nil)
	lb.Open(-1)
	require.True(t, lb.IsOpen())
	require.Equal(t, 0, lb.Index())
}

func TestLightboxClosedIgnoresNavigation(t *testing.T) {
	t.Parallel()

	seq, _ := twoColorProduct()
	lb := NewLightbox(seq, nil)

	require.False(t, lb.Navigate(Next))
	require.False(t, lb.JumpTo(3))
	require.Equal(t, 0, lb.Index())
}

func TestLightboxJumpTo(t *testing.T) {
	t.Parallel()

	seq, _ := twoColorProduct()
	lb := NewLightbox(seq, nil)
	lb.Open(0)

	require.True(t, lb.JumpTo(12))
	require.Equal(t, "PI-3", lb.Current())
	require.False(t, lb.JumpTo(20))
	require.False(t, lb.JumpTo(-1))
	require.Equal(t, 12, lb.Index())
}

func TestLightboxKeyboard(t *testing.T) {
	t.Parallel()

	seq, _ := twoColorProduct()
	keys := NewKeyDispatcher()
	lb := NewLightbox(seq, keys)

	require.False(t, keys.Dispatch(KeyArrowRight), "nobody listens while closed")
	require.Zero(t, keys.Listeners())

	lb.Open(4)
	require.Equal(t, 1, keys.Listeners())

	require.True(t, keys.Dispatch(KeyArrowRight))
	require.Equal(t, 5, lb.Index())
	keys.Dispatch(KeyArrowLeft)
	keys.Dispatch(KeyArrowLeft)
	require.Equal(t, 3, lb.Index())
	keys.Dispatch(Key("Enter"))
	require.Equal(t, 3, lb.Index())

	keys.Dispatch(KeyEscape)
	require.False(t, lb.IsOpen())
	require.Zero(t, keys.Listeners())
}

func TestLightboxDoesNotLeakHandlers(t *testing.T) {
	t.Parallel()

	seq, _ := twoColorProduct()
	keys := NewKeyDispatcher()
	lb := NewLightbox(seq, keys)

	for i := 0; i < 25; i++ {
		lb.Open(i % seq.Len())
		lb.Open(3) // re-open while open only repositions
		require.Equal(t, 1, keys.Listeners())
		if i%2 == 0 {
			lb.Close()
		} else {
			keys.Dispatch(KeyEscape)
		}
		require.Zero(t, keys.Listeners())
	}

	lb.Open(0)
	lb.Teardown()
	require.False(t, lb.IsOpen())
	require.Zero(t, keys.Listeners())

	// closing twice is harmless
	lb.Close()
	require.Zero(t, keys.Listeners())
}

func TestKeyDispatcherUnsubscribeIsIdempotent(t *testing.T) {
	t.Parallel()

	keys := NewKeyDispatcher()
	var got []Key
	unsubscribe := keys.Subscribe(func(k Key) { got = append(got, k) })
	other := keys.Subscribe(func(Key) {})
	require.Equal(t, 2, keys.Listeners())

	keys.Dispatch(KeyEscape)
	unsubscribe()
	unsubscribe()
	require.Equal(t, 1, keys.Listeners())

	keys.Dispatch(KeyArrowLeft)
	require.Equal(t, []Key{KeyEscape}, got)

	other()
	require.Zero(t, keys.Listeners())
}
