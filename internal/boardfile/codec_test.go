package boardfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelab/talkboard/internal/board"
	"github.com/kestrelab/talkboard/internal/testutil"
)

const fruitVegFile = testutil.FruitVegFile

func TestDecode_FruitVegScenario(t *testing.T) {
	b, err := Decode(strings.NewReader(fruitVegFile))
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two"}, b.TopLevelCategories())

	caption, err := b.Select("one")
	require.NoError(t, err)
	assert.Empty(t, caption)
	assert.Equal(t, "fruit", b.ActiveLabel())
	assert.Equal(t, []string{"apple.png", "banana.png"}, b.ImageLocs())

	caption, err = b.Select("apple.png")
	require.NoError(t, err)
	assert.Equal(t, "apple", caption)

	caption, err = b.Select("two")
	require.NoError(t, err)
	assert.Empty(t, caption)
	assert.Equal(t, "veg", b.ActiveLabel())
}

func TestDecode_LineHandling(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCats  []string
		wantItems map[string][]board.Item
	}{
		{
			name:     "empty input",
			input:    "",
			wantCats: []string{},
		},
		{
			name:     "label may contain spaces",
			input:    "snacks salty and sweet\n>chip.png potato chip\n",
			wantCats: []string{"snacks"},
			wantItems: map[string][]board.Item{
				"snacks": {{ImageLoc: "chip.png", Caption: "potato chip"}},
			},
		},
		{
			name:     "leading and trailing whitespace trimmed",
			input:    "  one fruit  \n\t>apple.png apple\t\n",
			wantCats: []string{"one"},
			wantItems: map[string][]board.Item{
				"one": {{ImageLoc: "apple.png", Caption: "apple"}},
			},
		},
		{
			name:     "bare category id without label skipped",
			input:    "one\ntwo veg\n",
			wantCats: []string{"two"},
		},
		{
			name:     "item line without caption skipped",
			input:    "one fruit\n>apple.png\n>banana.png banana\n",
			wantCats: []string{"one"},
			wantItems: map[string][]board.Item{
				"one": {{ImageLoc: "banana.png", Caption: "banana"}},
			},
		},
		{
			name:     "item before any category ignored",
			input:    ">apple.png apple\none fruit\n>banana.png banana\n",
			wantCats: []string{"one"},
			wantItems: map[string][]board.Item{
				"one": {{ImageLoc: "banana.png", Caption: "banana"}},
			},
		},
		{
			name:     "blank lines skipped",
			input:    "\n\none fruit\n\n>apple.png apple\n\n",
			wantCats: []string{"one"},
			wantItems: map[string][]board.Item{
				"one": {{ImageLoc: "apple.png", Caption: "apple"}},
			},
		},
		{
			name:     "re-declared category overwrites label and keeps items",
			input:    "one fruit\n>apple.png apple\none fruits\n>banana.png banana\n",
			wantCats: []string{"one"},
			wantItems: map[string][]board.Item{
				"one": {
					{ImageLoc: "apple.png", Caption: "apple"},
					{ImageLoc: "banana.png", Caption: "banana"},
				},
			},
		},
		{
			name:     "malformed line does not corrupt previously loaded state",
			input:    "one fruit\n>apple.png apple\ntwo\n>carrot.png carrot\n",
			wantCats: []string{"one"},
			wantItems: map[string][]board.Item{
				// "two" was skipped, so carrot attaches to the still
				// pending "one" category.
				"one": {
					{ImageLoc: "apple.png", Caption: "apple"},
					{ImageLoc: "carrot.png", Caption: "carrot"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Decode(strings.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, tt.wantCats, b.TopLevelCategories())
			for id, wantItems := range tt.wantItems {
				cat, ok := b.Category(id)
				require.True(t, ok, "category %q missing", id)
				assert.Equal(t, wantItems, cat.Items())
			}
		})
	}
}

func TestDecode_LabelOverwrite(t *testing.T) {
	b, err := Decode(strings.NewReader("one fruit\none fresh fruit\n"))
	require.NoError(t, err)

	cat, ok := b.Category("one")
	require.True(t, ok)
	assert.Equal(t, "fresh fruit", cat.Label())
}

func TestDecode_StartsInTopLevelView(t *testing.T) {
	b, err := Decode(strings.NewReader(fruitVegFile))
	require.NoError(t, err)

	assert.Empty(t, b.ActiveID())
	assert.Equal(t, b.TopLevelCategories(), b.ImageLocs())
}

func TestEncode(t *testing.T) {
	b := board.New()
	one := b.CreateCategory("one")
	one.SetLabel("fruit")
	one.AddItem("apple.png", "apple")
	one.AddItem("banana.png", "banana")
	two := b.CreateCategory("two")
	two.SetLabel("veg")
	two.AddItem("carrot.png", "carrot")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, b))

	assert.Equal(t, fruitVegFile, buf.String())
}

func TestEncode_EmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, board.New()))
	assert.Empty(t, buf.String())
}

func TestDecode_ReselectPolicyOption(t *testing.T) {
	b, err := Decode(strings.NewReader(fruitVegFile), board.WithReselectPolicy(board.ReselectNoop))
	require.NoError(t, err)

	_, err = b.Select("one")
	require.NoError(t, err)
	_, err = b.Select("one")
	assert.NoError(t, err, "decode should pass board options through")
}
