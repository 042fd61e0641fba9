package greetbridge_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feather-lang/greetbridge"
)

func TestGreetWorld(t *testing.T) {
	g, err := greetbridge.New("World")
	require.NoError(t, err)
	defer g.Close()

	msg, err := g.Greet()
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", msg)
	assert.Equal(t, "World", g.Subject())
}

func TestGreetEmptySubject(t *testing.T) {
	g, err := greetbridge.New("")
	require.NoError(t, err)
	defer g.Close()

	msg, err := g.Greet()
	require.NoError(t, err)
	assert.Equal(t, "Hello, !", msg)
}

func TestGreetIsDeterministic(t *testing.T) {
	for _, s := range roundTripSamples {
		g, err := greetbridge.New(s)
		require.NoError(t, err)

		first, err := g.Greet()
		require.NoError(t, err)
		second, err := g.Greet()
		require.NoError(t, err)
		assert.Equal(t, first, second)
		require.NoError(t, g.Close())
	}
}

func TestGreetPreservesNonASCII(t *testing.T) {
	for _, s := range []string{"Zoë", "Ñandú", "世界", "Ελλάδα", "👋🏽"} {
		g, err := greetbridge.New(s)
		require.NoError(t, err)

		msg, err := g.Greet()
		require.NoError(t, err)
		assert.Contains(t, msg, s)
		assert.Equal(t, "Hello, "+s+"!", msg)
		g.Close()
	}
}

func TestNewRejectsInvalidUTF8(t *testing.T) {
	g, err := greetbridge.New("bad \xff subject")
	assert.Nil(t, g)
	var encErr *greetbridge.EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, 4, encErr.Offset)
}

func TestNewUTF16(t *testing.T) {
	subject := []uint16{'W', 0xF6, 'r', 'l', 'd', ' ', 0xD83C, 0xDF0D}
	g, err := greetbridge.NewUTF16(subject)
	require.NoError(t, err)
	defer g.Close()

	assert.Equal(t, "Wörld 🌍", g.Subject())

	msg, err := g.GreetUTF16()
	require.NoError(t, err)
	want := append([]uint16{'H', 'e', 'l', 'l', 'o', ',', ' '}, subject...)
	want = append(want, '!')
	assert.Equal(t, want, msg)
}

func TestNewUTF16RejectsUnpairedSurrogate(t *testing.T) {
	g, err := greetbridge.NewUTF16([]uint16{'a', 0xDBFF})
	assert.Nil(t, g)
	assert.ErrorIs(t, err, greetbridge.ErrEncoding)
}

func TestCloseIsIdempotent(t *testing.T) {
	g, err := greetbridge.New("World")
	require.NoError(t, err)

	require.NoError(t, g.Close())
	require.NoError(t, g.Close())
	assert.True(t, g.Closed())

	_, err = g.Greet()
	assert.ErrorIs(t, err, greetbridge.ErrClosed)
	_, err = g.GreetUTF16()
	assert.ErrorIs(t, err, greetbridge.ErrClosed)
	assert.Equal(t, "World", g.Subject())
}

func TestIndependentGreeters(t *testing.T) {
	a, err := greetbridge.New("Alice")
	require.NoError(t, err)
	b, err := greetbridge.New("Bob")
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.Close())

	msg, err := b.Greet()
	require.NoError(t, err)
	assert.Equal(t, "Hello, Bob!", msg)
}

func TestConcurrentGreet(t *testing.T) {
	g, err := greetbridge.New("Concurrent")
	require.NoError(t, err)
	defer g.Close()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				msg, err := g.Greet()
				if err != nil {
					errs <- err
					return
				}
				if msg != "Hello, Concurrent!" {
					t.Errorf("unexpected greeting %q", msg)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestCloseDuringGreet(t *testing.T) {
	g, err := greetbridge.New("Racy")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				msg, err := g.Greet()
				if err != nil {
					if err != greetbridge.ErrClosed {
						t.Errorf("unexpected error: %v", err)
					}
					return
				}
				if msg != "Hello, Racy!" {
					t.Errorf("unexpected greeting %q", msg)
					return
				}
			}
		}()
	}
	require.NoError(t, g.Close())
	wg.Wait()
}
