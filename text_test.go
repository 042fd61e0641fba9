package greetbridge_test

import (
	"errors"
	"testing"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"

	"github.com/feather-lang/greetbridge"
)

var roundTripSamples = []string{
	"",
	"World",
	"Zoë",
	"こんにちは世界",
	"Привет",
	"emoji 👋🏽",
	"mixed a\x00b",
	"� is a real character",
	"\U0010FFFF",
}

func TestNativeRoundTrip(t *testing.T) {
	for _, s := range roundTripSamples {
		b, err := greetbridge.ToNative(s)
		require.NoError(t, err, "ToNative(%q)", s)
		got, err := greetbridge.FromNative(b)
		require.NoError(t, err, "FromNative(%q)", s)
		assert.Equal(t, s, got)
	}
}

func TestUTF16RoundTrip(t *testing.T) {
	for _, s := range roundTripSamples {
		u, err := greetbridge.EncodeUTF16(s)
		require.NoError(t, err, "EncodeUTF16(%q)", s)
		assert.Equal(t, utf16.Encode([]rune(s)), u)
		got, err := greetbridge.DecodeUTF16(u)
		require.NoError(t, err, "DecodeUTF16(%q)", s)
		assert.Equal(t, s, got)
	}
}

func TestToNativeDoesNotAlias(t *testing.T) {
	b, err := greetbridge.ToNative("World")
	require.NoError(t, err)
	b[0] = 'J'

	again, err := greetbridge.ToNative("World")
	require.NoError(t, err)
	assert.Equal(t, "World", string(again))
}

func TestInvalidUTF8(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{"lone continuation", "\x80", 0},
		{"truncated sequence", "ab\xe4\xb8", 2},
		{"overlong", "x\xc0\xaf", 1},
		{"encoded surrogate", "ok\xed\xa0\x80", 2},
		{"after multibyte", "é\xff", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := greetbridge.ToNative(tt.input)
			var encErr *greetbridge.EncodingError
			require.ErrorAs(t, err, &encErr)
			assert.Equal(t, greetbridge.Inbound, encErr.Direction)
			assert.Equal(t, greetbridge.UTF8, encErr.Source)
			assert.Equal(t, tt.offset, encErr.Offset)
			assert.ErrorIs(t, err, greetbridge.ErrEncoding)
			assert.ErrorIs(t, err, encoding.ErrInvalidUTF8, "decoder error is wrapped")

			_, err = greetbridge.FromNative([]byte(tt.input))
			require.ErrorAs(t, err, &encErr)
			assert.Equal(t, greetbridge.Outbound, encErr.Direction)

			_, err = greetbridge.EncodeUTF16(tt.input)
			assert.ErrorIs(t, err, greetbridge.ErrEncoding)
		})
	}
}

func TestUnpairedSurrogates(t *testing.T) {
	tests := []struct {
		name   string
		input  []uint16
		offset int
		reason string
	}{
		{"lone high", []uint16{0xD800}, 0, "unpaired high surrogate"},
		{"lone low", []uint16{'a', 0xDC00}, 1, "unpaired low surrogate"},
		{"high then ascii", []uint16{'a', 'b', 0xD83D, 'c'}, 2, "unpaired high surrogate"},
		{"reversed pair", []uint16{0xDC00, 0xD800}, 0, "unpaired low surrogate"},
		{"high at end after pair", []uint16{0xD83D, 0xDC4B, 0xD83D}, 2, "unpaired high surrogate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := greetbridge.DecodeUTF16(tt.input)
			assert.Empty(t, s)
			var encErr *greetbridge.EncodingError
			require.ErrorAs(t, err, &encErr)
			assert.Equal(t, greetbridge.UTF16, encErr.Source)
			assert.Equal(t, tt.offset, encErr.Offset)
			assert.Equal(t, tt.reason, encErr.Reason)
			assert.True(t, errors.Is(err, greetbridge.ErrEncoding))
		})
	}
}

func TestDecodeUTF16Pairs(t *testing.T) {
	got, err := greetbridge.DecodeUTF16([]uint16{'H', 'i', ' ', 0xD83D, 0xDC4B})
	require.NoError(t, err)
	assert.Equal(t, "Hi 👋", got)
}

func TestEncodingErrorMessage(t *testing.T) {
	_, err := greetbridge.DecodeUTF16([]uint16{0xDFFF})
	require.Error(t, err)
	assert.Equal(t, "greetbridge: inbound UTF-16 at offset 0: unpaired low surrogate", err.Error())
}

func FuzzNativeRoundTrip(f *testing.F) {
	for _, s := range roundTripSamples {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		b, err := greetbridge.ToNative(s)
		if !utf8.ValidString(s) {
			if !errors.Is(err, greetbridge.ErrEncoding) {
				t.Fatalf("ToNative(%q): expected encoding error, got %v", s, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("ToNative(%q): %v", s, err)
		}
		got, err := greetbridge.FromNative(b)
		if err != nil || got != s {
			t.Fatalf("FromNative(ToNative(%q)) = %q, %v", s, got, err)
		}
	})
}

func FuzzUTF16RoundTrip(f *testing.F) {
	for _, s := range roundTripSamples {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			t.Skip()
		}
		u, err := greetbridge.EncodeUTF16(s)
		if err != nil {
			t.Fatalf("EncodeUTF16(%q): %v", s, err)
		}
		got, err := greetbridge.DecodeUTF16(u)
		if err != nil || got != s {
			t.Fatalf("DecodeUTF16(EncodeUTF16(%q)) = %q, %v", s, got, err)
		}
	})
}
