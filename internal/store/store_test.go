package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acres-chat/internal/model"
	"acres-chat/internal/store"
)

const welcome = "Hi, I'm your Research Paper Assistant."

func TestNew_SeedsDefaultConversation(t *testing.T) {
	s := store.New(welcome)

	assert.Equal(t, store.DefaultName, s.Active())
	assert.Equal(t, []string{store.DefaultName}, s.Titles())

	messages := s.CurrentMessages()
	require.Len(t, messages, 1)
	assert.Empty(t, messages[0].Question)
	assert.Equal(t, welcome, messages[0].Answer)
	assert.False(t, messages[0].ShowSources)
}

func TestNew_NoWelcome(t *testing.T) {
	s := store.New("")
	assert.Empty(t, s.CurrentMessages())
}

func TestCreate(t *testing.T) {
	t.Run("new conversation becomes active and empty", func(t *testing.T) {
		s := store.New(welcome)
		s.Create("Research")

		assert.Equal(t, "Research", s.Active())
		assert.Equal(t, []string{store.DefaultName, "Research"}, s.Titles())
		assert.Empty(t, s.CurrentMessages())
	})

	t.Run("colliding name overwrites with an empty conversation", func(t *testing.T) {
		s := store.New(welcome)
		s.Create("Research")
		s.Append("Research", &model.QA{Question: "q"})
		require.Len(t, s.CurrentMessages(), 1)

		s.Create("Research")
		assert.Empty(t, s.CurrentMessages())
		// No duplicate title entry.
		assert.Equal(t, []string{store.DefaultName, "Research"}, s.Titles())
	})
}

func TestDelete(t *testing.T) {
	t.Run("deleting the only conversation reseeds an empty default", func(t *testing.T) {
		s := store.New(welcome)
		s.Delete(store.DefaultName)

		assert.Equal(t, []string{store.DefaultName}, s.Titles())
		assert.Equal(t, store.DefaultName, s.Active())
		// The welcome opener belongs to session start only; the recreated
		// default has no messages.
		assert.Empty(t, s.CurrentMessages())
	})

	t.Run("deleting the active conversation moves the pointer", func(t *testing.T) {
		s := store.New(welcome)
		s.Create("A")
		s.Create("B")
		require.Equal(t, "B", s.Active())

		s.Delete("B")
		assert.Equal(t, store.DefaultName, s.Active())
		assert.Equal(t, []string{store.DefaultName, "A"}, s.Titles())
	})

	t.Run("deleting an inactive conversation keeps the pointer", func(t *testing.T) {
		s := store.New(welcome)
		s.Create("A")
		s.Delete(store.DefaultName)
		assert.Equal(t, "A", s.Active())
	})

	t.Run("unknown name is a no-op", func(t *testing.T) {
		s := store.New(welcome)
		s.Delete("nope")
		assert.Equal(t, []string{store.DefaultName}, s.Titles())
	})
}

func TestSetActive_NoValidation(t *testing.T) {
	s := store.New(welcome)
	s.SetActive("ghost")
	assert.Equal(t, "ghost", s.Active())
}

func TestMessageMutators(t *testing.T) {
	s := store.New("")
	s.Append(store.DefaultName, &model.QA{ID: "m1", Question: "q", Sources: []string{}})

	s.AppendToAnswer(store.DefaultName, "m1", "Hello")
	s.AppendToAnswer(store.DefaultName, "m1", ", world")
	qa, ok := s.Message(store.DefaultName, "m1")
	require.True(t, ok)
	assert.Equal(t, "Hello, world", qa.Answer)

	s.SetHideAnswer(store.DefaultName, "m1", true)
	s.ReplaceAnswer(store.DefaultName, "m1", "Hello, world!")
	s.SetHideAnswer(store.DefaultName, "m1", false)
	s.SetSources(store.DefaultName, "m1", []string{"https://example.com/doc/1"})
	s.SetShowSources(store.DefaultName, "m1", true)

	qa, _ = s.Message(store.DefaultName, "m1")
	assert.Equal(t, "Hello, world!", qa.Answer)
	assert.False(t, qa.HideAnswer)
	assert.Equal(t, []string{"https://example.com/doc/1"}, qa.Sources)
	assert.True(t, qa.ShowSources)
}

func TestMessageMutators_TargetOwnMessageNotNewest(t *testing.T) {
	s := store.New("")
	s.Append(store.DefaultName, &model.QA{ID: "m1", Question: "first", Sources: []string{}})
	// A follow-up turn appends the next message before the first one is done.
	s.Append(store.DefaultName, &model.QA{ID: "m2", Question: "second", Sources: []string{}})

	s.SetShowSources(store.DefaultName, "m1", true)
	s.AppendToAnswer(store.DefaultName, "m1", "done")

	first, ok := s.Message(store.DefaultName, "m1")
	require.True(t, ok)
	assert.True(t, first.ShowSources)
	assert.Equal(t, "done", first.Answer)

	second, ok := s.Message(store.DefaultName, "m2")
	require.True(t, ok)
	assert.False(t, second.ShowSources)
	assert.Empty(t, second.Answer)
}

func TestMessageMutators_UnknownMessageIsNoOp(t *testing.T) {
	s := store.New("")
	s.Append(store.DefaultName, &model.QA{ID: "m1", Sources: []string{}})

	s.SetShowSources(store.DefaultName, "ghost", true)
	qa, _ := s.Message(store.DefaultName, "m1")
	assert.False(t, qa.ShowSources)

	_, ok := s.Message(store.DefaultName, "ghost")
	assert.False(t, ok)
}

func TestMessages_ReturnsCopies(t *testing.T) {
	s := store.New("")
	s.Append(store.DefaultName, &model.QA{ID: "m1", Question: "q", Sources: []string{"a"}})

	messages, ok := s.Messages(store.DefaultName)
	require.True(t, ok)
	messages[0].Answer = "tampered"
	messages[0].Sources[0] = "tampered"

	fresh, _ := s.Message(store.DefaultName, "m1")
	assert.Empty(t, fresh.Answer)
	assert.Equal(t, []string{"a"}, fresh.Sources)

	_, ok = s.Messages("missing")
	assert.False(t, ok)
}
