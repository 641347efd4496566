package readables

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaperbackOperations(t *testing.T) {
	tests := []struct {
		name     string
		call     func(p *Paperback)
		expected string
	}{
		{name: "open", call: (*Paperback).Open, expected: "Opening the paperback\n"},
		{name: "close", call: (*Paperback).Close, expected: "Closing the paperback\n"},
		{name: "read", call: (*Paperback).Read, expected: "Reading the paperback\n"},
		{name: "bookmark", call: (*Paperback).Bookmark, expected: "Bookmarking the paperback\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.call(NewPaperback(&buf))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestAudiobookOperations(t *testing.T) {
	tests := []struct {
		name     string
		call     func(a *Audiobook)
		expected string
	}{
		{name: "open", call: (*Audiobook).Open, expected: "Opening the audiobook\n"},
		{name: "close", call: (*Audiobook).Close, expected: "Closing the audiobook\n"},
		{name: "read", call: (*Audiobook).Read, expected: "Reading the audiobook\n"},
		{name: "bookmark", call: (*Audiobook).Bookmark, expected: "Bookmarking the audiobook\n"},
		{name: "search", call: (*Audiobook).Search, expected: "Searching the audiobook\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.call(NewAudiobook(&buf))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestAudiobookSearchWritesSingleLine(t *testing.T) {
	var buf bytes.Buffer
	book := NewAudiobook(&buf)

	book.Search()

	assert.Equal(t, "Searching the audiobook\n", buf.String())
}

func TestPaperbackSequence(t *testing.T) {
	var buf bytes.Buffer
	var book Readable = NewPaperback(&buf)

	book.Open()
	book.Close()
	book.Read()
	book.Bookmark()

	expected := "Opening the paperback\n" +
		"Closing the paperback\n" +
		"Reading the paperback\n" +
		"Bookmarking the paperback\n"
	assert.Equal(t, expected, buf.String())
}

func TestCapabilitySets(t *testing.T) {
	readable := reflect.TypeOf((*Readable)(nil)).Elem()
	searchable := reflect.TypeOf((*Searchable)(nil)).Elem()

	t.Run("Readable does not expose Search", func(t *testing.T) {
		_, ok := readable.MethodByName("Search")
		assert.False(t, ok)
		assert.Equal(t, 4, readable.NumMethod())
	})

	t.Run("Searchable embeds Readable", func(t *testing.T) {
		assert.True(t, searchable.Implements(readable))
		assert.Equal(t, 5, searchable.NumMethod())
	})

	t.Run("Paperback is not Searchable", func(t *testing.T) {
		var book Readable = NewPaperback(&bytes.Buffer{})
		_, ok := book.(Searchable)
		assert.False(t, ok)
	})

	t.Run("Audiobook is Searchable", func(t *testing.T) {
		var book Readable = NewAudiobook(&bytes.Buffer{})
		_, ok := book.(Searchable)
		assert.True(t, ok)
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
		wantErr  bool
	}{
		{name: "paperback", input: "paperback", expected: FormatPaperback},
		{name: "audiobook", input: "audiobook", expected: FormatAudiobook},
		{name: "ignores case and spaces", input: "  AudioBook ", expected: FormatAudiobook},
		{name: "unknown", input: "ebook", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("builds every known format", func(t *testing.T) {
		for _, f := range Formats {
			var buf bytes.Buffer
			book, err := New(f, &buf)
			require.NoError(t, err)

			book.Read()
			assert.Equal(t, "Reading the "+string(f)+"\n", buf.String())
		}
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		book, err := New(Format("scroll"), nil)
		assert.Nil(t, book)
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("nil writer falls back to stdout", func(t *testing.T) {
		book := NewPaperback(nil)
		assert.NotNil(t, book.out)
	})
}
