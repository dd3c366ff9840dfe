package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/castle-adventure/internal/logger"
	"github.com/tatianab/castle-adventure/internal/world"
)

const (
	castleEnd = "Congratulations! You've saved the castle... perhaps now you'll be able to get a decent night's sleep.\n\n[The End.]"
	clubText  = "You club the monster on the back of the head knocking it unconscious."
)

func newCastleSession(t *testing.T) *Session {
	t.Helper()
	w, err := world.Castle()
	require.NoError(t, err)
	return NewEngine(w, logger.Discard()).NewSession()
}

func TestSession_Start(t *testing.T) {
	s := newCastleSession(t)

	out := s.Start()
	assert.Equal(t, "[Welcome to Castle Adventure!]\n\n"+
		"You rouse from your slumber to the cries of panicked servants. A monster is loose in the castle!\n\n"+
		"The hallway is to the [north].", out)
	assert.Equal(t, "bedroom", s.Location())
	assert.Empty(t, s.Inventory())
	assert.False(t, s.Won())
}

func TestSession_Walkthrough(t *testing.T) {
	s := newCastleSession(t)
	s.Start()

	out := s.Input("go north")
	assert.Equal(t, "hallway", s.Location())
	assert.Equal(t, "All of the servants must have escaped because the corridor is empty, "+
		"but you sense the monster is still nearby.\n\n"+
		"The bedroom is to the [south].\n"+
		"The study is to the [east].\n"+
		"The kitchen is to the [west].", out)

	out = s.Input("go east")
	assert.Equal(t, "study", s.Location())
	assert.Contains(t, out, "upon which sits a silver [candlestick].")
	assert.Contains(t, out, "\n\nThe hallway is to the [west].")

	assert.Equal(t, "You took the candlestick.", s.Input("take candlestick"))
	assert.Equal(t, []string{"candlestick"}, s.Inventory())

	out = s.Input("look")
	assert.NotContains(t, out, "candlestick")
	assert.NotContains(t, out, "is to the", "look does not list exits")
	assert.Equal(t, "The study is filled with wall-to-wall shelves of leatherbound books. "+
		"A wooden desk rests in the middle of the room.", out)

	s.Input("go west")
	s.Input("go west")
	assert.Equal(t, "kitchen", s.Location())
	assert.False(t, s.Won())

	out = s.Input("use candlestick")
	assert.True(t, s.Won())
	assert.Equal(t, clubText+"\n\n"+castleEnd, out)
}

func TestSession_Parsing(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		location string
	}{
		{name: "unknown command", input: "fly", expected: MsgUnknownCommand, location: "bedroom"},
		{name: "empty input", input: "", expected: MsgUnknownCommand, location: "bedroom"},
		{name: "whitespace only", input: " \t ", expected: MsgUnknownCommand, location: "bedroom"},
		{name: "command is case folded", input: "  GO NORTH  ", location: "hallway"},
		{name: "move synonym", input: "move n", location: "hallway"},
		{name: "tabs between words", input: "go\t\tnorth", location: "hallway"},
		{name: "go without direction", input: "go", expected: MsgNoDirection, location: "bedroom"},
		{name: "unknown direction", input: "go west", expected: MsgNoDirection, location: "bedroom"},
		{name: "direction is not a prefix", input: "go northern", expected: MsgNoDirection, location: "bedroom"},
		{name: "take without item", input: "take", expected: MsgTakeWhat, location: "bedroom"},
		{name: "use without item", input: "use", expected: MsgUseWhat, location: "bedroom"},
		{name: "look ignores argument", input: "look around", location: "bedroom",
			expected: "You're in your bedroom chamber. The fireplace provides both warmth and gentle illumination."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newCastleSession(t)
			s.Start()

			out := s.Input(tt.input)
			if tt.expected != "" {
				assert.Equal(t, tt.expected, out)
			}
			assert.Equal(t, tt.location, s.Location())
			assert.Empty(t, s.Inventory())
			assert.False(t, s.Won())
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		cmd   string
		arg   string
	}{
		{"look", "look", ""},
		{"  Take  Silver   Key ", "take", "silver   key"},
		{"USE\tlamp", "use", "lamp"},
		{"", "", ""},
	}
	for _, tt := range tests {
		cmd, arg := parse(tt.input)
		assert.Equal(t, tt.cmd, cmd, tt.input)
		assert.Equal(t, tt.arg, arg, tt.input)
	}
}

func TestSession_TakeTwice(t *testing.T) {
	s := newCastleSession(t)
	s.Start()
	s.Input("go north")
	s.Input("go east")

	assert.Equal(t, "You took the candlestick.", s.Input("take candlestick"))
	assert.Len(t, s.Inventory(), 1)

	assert.Equal(t, "There is no candlestick to take.", s.Input("take candlestick"))
	assert.Len(t, s.Inventory(), 1)
}

func TestSession_TakeMissing(t *testing.T) {
	s := newCastleSession(t)
	s.Start()

	assert.Equal(t, "There is no candlestick to take.", s.Input("take candlestick"))
	assert.Equal(t, "There is no silver%20candlestick to take.", s.Input("take silver candlestick"))
	assert.Empty(t, s.Inventory())
}

func TestSession_UseNotHeld(t *testing.T) {
	s := newCastleSession(t)
	s.Start()

	for _, path := range [][]string{nil, {"go north"}, {"go east"}, {"go west", "go west"}} {
		for _, step := range path {
			s.Input(step)
		}
		assert.Equal(t, "You have no candlestick to use.", s.Input("use candlestick"), s.Location())
		assert.Equal(t, "You have no rope%20ladder to use.", s.Input("use rope ladder"), s.Location())
	}
	assert.Equal(t, "kitchen", s.Location())
	assert.False(t, s.Won())
}

func TestSession_UseWrongRoom(t *testing.T) {
	s := newCastleSession(t)
	s.Start()
	s.Input("go north")
	s.Input("go east")
	s.Input("take candlestick")

	assert.Equal(t, "It makes no sense to use the candlestick here.", s.Input("use candlestick"))
	assert.False(t, s.Won())
}

func TestSession_WonIsLatched(t *testing.T) {
	s := newCastleSession(t)
	s.Start()
	for _, step := range []string{"go north", "go east", "take candlestick", "go west", "go west", "use candlestick"} {
		s.Input(step)
	}
	require.True(t, s.Won())

	// Every later response still carries the ending.
	for _, step := range []string{"look", "fly", "go east", "take candlestick", "use candlestick"} {
		out := s.Input(step)
		assert.True(t, s.Won())
		assert.Contains(t, out, "\n\n"+castleEnd, step)
	}
	assert.Equal(t, "hallway", s.Location())

	s.Start()
	assert.True(t, s.Won(), "start does not reset the win")
}

func TestSession_ItemsStayInRoom(t *testing.T) {
	s := newCastleSession(t)
	s.Start()
	s.Input("go north")
	s.Input("go east")
	s.Input("take candlestick")

	room, ok := s.world.Room("study")
	require.True(t, ok)
	assert.True(t, room.HasItem("candlestick"))
}

func TestSession_PrefixMatchOrder(t *testing.T) {
	w, err := world.New(world.Config{
		Start: "hub",
		Rooms: []world.RoomConfig{
			{
				ID:          "hub",
				Description: world.Text("Hub."),
				Exits: []world.Exit{
					{Direction: "southwest", Destination: "cave"},
					{Direction: "south", Destination: "beach"},
				},
			},
			{ID: "cave", Description: world.Text("Cave.")},
			{ID: "beach", Description: world.Text("Beach.")},
		},
	})
	require.NoError(t, err)

	s := NewEngine(w, logger.Discard()).NewSession()
	assert.Equal(t, "Cave.\n\n", s.Input("go south"))
	assert.Equal(t, "cave", s.Location())
}

func TestSession_NarrateEffect(t *testing.T) {
	w, err := world.New(world.Config{
		Start: "well",
		End:   world.Text("Done."),
		Rooms: []world.RoomConfig{
			{
				ID:          "well",
				Description: world.Text("A well."),
				Items:       []string{"Copper Coin"},
				Effects: map[string]world.Effect{
					"copper coin": {Kind: world.Narrate, Text: "Plink."},
				},
			},
		},
	})
	require.NoError(t, err)

	s := NewEngine(w, nil).NewSession()
	assert.Equal(t, "You took the copper%20coin.", s.Input("take Copper Coin"))
	assert.True(t, s.Holding("copper coin"))
	assert.Equal(t, "Plink.", s.Input("use copper coin"))
	assert.False(t, s.Won())
}

func TestSession_DirectCalls(t *testing.T) {
	s := newCastleSession(t)

	assert.Equal(t, "bedroom", s.Location(), "new sessions stand in the start room")
	assert.Equal(t, MsgNoDirection, s.Move(""))
	assert.Equal(t, MsgTakeWhat, s.Take("  "))
	assert.Equal(t, MsgUseWhat, s.Use(""))
	assert.Contains(t, s.Move("N"), "The study is to the [east].")
	assert.Equal(t, "hallway", s.Location())
}

func TestEngine_SessionsAreIndependent(t *testing.T) {
	w, err := world.Castle()
	require.NoError(t, err)
	eng := NewEngine(w, logger.Discard())

	a := eng.NewSession()
	b := eng.NewSession()
	assert.NotEqual(t, a.ID, b.ID)
	assert.Same(t, w, eng.World())

	a.Input("go north")
	a.Input("go east")
	a.Input("take candlestick")

	assert.Equal(t, "bedroom", b.Location())
	assert.Empty(t, b.Inventory())
	b.Input("go north")
	b.Input("go east")
	assert.Contains(t, b.Input("look"), "[candlestick]")
	assert.NotContains(t, a.Input("look"), "[candlestick]")
}
