package guide

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taichi-iskw/tv-guide/internal/model"
)

func sampleChannels() []model.Channel {
	return []model.Channel{
		{ID: "1", Title: "Zeta News", StbNumber: "501", Category: "News", Language: "English", Filters: []string{"HD"}},
		{ID: "2", Title: "Sports Channel", StbNumber: "105", Category: "Sports", Language: "Malay"},
		{ID: "3", Title: "alpha Movies", StbNumber: "411", Category: "Movies", Language: "English", Filters: []string{"hd", "4K"}},
		{ID: "7", Title: "Berita Malaysia", StbNumber: "502", Category: "News", Language: "Malay"},
	}
}

func titles(channels []model.Channel) []string {
	out := make([]string, 0, len(channels))
	for _, ch := range channels {
		out = append(out, ch.Title)
	}
	return out
}

func ids(channels []model.Channel) []model.ChannelID {
	out := make([]model.ChannelID, 0, len(channels))
	for _, ch := range channels {
		out = append(out, ch.ID)
	}
	return out
}

func TestDerive_DefaultStateIsIdentity(t *testing.T) {
	raw := sampleChannels()

	view := Derive(raw, model.DefaultFilterState(), model.NewFavoriteSet(), nil)

	if diff := cmp.Diff(raw, view); diff != "" {
		t.Errorf("default state changed the channel list (-raw +view):\n%s", diff)
	}
}

func TestDerive_ZeroStateIsIdentity(t *testing.T) {
	raw := sampleChannels()

	// Empty category/language behave like "All"
	view := Derive(raw, model.FilterState{}, nil, nil)
	assert.Equal(t, ids(raw), ids(view))
}

func TestDerive_DoesNotMutateRaw(t *testing.T) {
	raw := sampleChannels()
	before := sampleChannels()

	state := model.DefaultFilterState()
	state.Sort = model.SortAscending
	view := Derive(raw, state, nil, nil)

	assert.Equal(t, before, raw)
	require.NotEmpty(t, view)
	view[0].Title = "changed"
	assert.Equal(t, before, raw)
}

func TestDerive_Filters(t *testing.T) {
	favorites := model.NewFavoriteSet("2", "7")

	tests := []struct {
		name  string
		state func(s *model.FilterState)
		want  []model.ChannelID
	}{
		{
			name:  "category",
			state: func(s *model.FilterState) { s.Category = "News" },
			want:  []model.ChannelID{"1", "7"},
		},
		{
			name:  "language",
			state: func(s *model.FilterState) { s.Language = "English" },
			want:  []model.ChannelID{"1", "3"},
		},
		{
			name:  "hd uses capability tags case-insensitively",
			state: func(s *model.FilterState) { s.HDOnly = true },
			want:  []model.ChannelID{"1", "3"},
		},
		{
			name:  "search title case-insensitive",
			state: func(s *model.FilterState) { s.SearchTerm = "spo" },
			want:  []model.ChannelID{"2"},
		},
		{
			name:  "search stb number substring",
			state: func(s *model.FilterState) { s.SearchTerm = "5" },
			want:  []model.ChannelID{"1", "2", "7"},
		},
		{
			name:  "search matches title or number",
			state: func(s *model.FilterState) { s.SearchTerm = "NEWS" },
			want:  []model.ChannelID{"1"},
		},
		{
			name:  "favorites only",
			state: func(s *model.FilterState) { s.FavoritesOnly = true },
			want:  []model.ChannelID{"2", "7"},
		},
		{
			name: "conjunction",
			state: func(s *model.FilterState) {
				s.Category = "News"
				s.FavoritesOnly = true
			},
			want: []model.ChannelID{"7"},
		},
		{
			name:  "no match",
			state: func(s *model.FilterState) { s.Category = "Kids" },
			want:  []model.ChannelID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := model.DefaultFilterState()
			tt.state(&state)

			got := Derive(sampleChannels(), state, favorites, nil)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestDerive_SearchTitleAndNumber(t *testing.T) {
	raw := []model.Channel{
		{ID: "1", Title: "Sports Channel", StbNumber: "801"},
		{ID: "2", Title: "Movies", StbNumber: "105"},
	}

	state := model.DefaultFilterState()
	state.SearchTerm = "spo"
	assert.Equal(t, []string{"Sports Channel"}, titles(Derive(raw, state, nil, nil)))

	state.SearchTerm = "5"
	assert.Equal(t, []string{"Movies"}, titles(Derive(raw, state, nil, nil)))
}

func TestDerive_FavoritesOnlyWithoutFavorites(t *testing.T) {
	state := model.DefaultFilterState()
	state.FavoritesOnly = true

	assert.Empty(t, Derive(sampleChannels(), state, nil, nil))
}

func TestDerive_FiltersAreIdempotent(t *testing.T) {
	state := model.DefaultFilterState()
	state.Category = "News"
	state.Language = "Malay"

	once := Derive(sampleChannels(), state, nil, nil)
	twice := Derive(once, state, nil, nil)

	assert.Equal(t, once, twice)
}

func TestDerive_NewsMalayScenario(t *testing.T) {
	raw := []model.Channel{
		{ID: "A", Title: "A", Category: "News", Language: "English"},
		{ID: "B", Title: "B", Category: "Sports", Language: "Malay"},
		{ID: "C", Title: "C", Category: "News", Language: "Malay"},
	}

	state := model.DefaultFilterState()
	state.Category = "News"
	assert.Equal(t, []model.ChannelID{"A", "C"}, ids(Derive(raw, state, nil, nil)))

	state.Language = "Malay"
	assert.Equal(t, []model.ChannelID{"C"}, ids(Derive(raw, state, nil, nil)))
}

func TestSortByTitle(t *testing.T) {
	tests := []struct {
		name  string
		order model.SortOrder
		in    []string
		want  []string
	}{
		{name: "ascending", order: model.SortAscending, in: []string{"Zeta", "Alpha"}, want: []string{"Alpha", "Zeta"}},
		{name: "descending", order: model.SortDescending, in: []string{"Alpha", "Zeta"}, want: []string{"Zeta", "Alpha"}},
		{name: "none keeps order", order: model.SortNone, in: []string{"Zeta", "Alpha", "Mu"}, want: []string{"Zeta", "Alpha", "Mu"}},
		{name: "locale aware ignores case", order: model.SortAscending, in: []string{"beta", "Alpha", "Gamma"}, want: []string{"Alpha", "beta", "Gamma"}},
		{name: "accents collate with base letter", order: model.SortAscending, in: []string{"Zulu", "Éclair", "Delta"}, want: []string{"Delta", "Éclair", "Zulu"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channels := make([]model.Channel, 0, len(tt.in))
			for _, title := range tt.in {
				channels = append(channels, model.Channel{Title: title})
			}

			SortByTitle(channels, tt.order, NewTitleCollator("en"))
			assert.Equal(t, tt.want, titles(channels))
		})
	}
}

func TestSortByTitle_StableForEqualTitles(t *testing.T) {
	channels := []model.Channel{
		{ID: "1", Title: "Same"},
		{ID: "2", Title: "Other"},
		{ID: "3", Title: "Same"},
	}

	SortByTitle(channels, model.SortDescending, nil)
	assert.Equal(t, []model.ChannelID{"1", "3", "2"}, ids(channels))
}

func TestNextOption(t *testing.T) {
	options := []string{"Movies", "News"}

	assert.Equal(t, "Movies", NextOption(options, model.OptionAll))
	assert.Equal(t, "News", NextOption(options, "Movies"))
	assert.Equal(t, model.OptionAll, NextOption(options, "News"))
	assert.Equal(t, "Movies", NextOption(options, "Unknown"))
	assert.Equal(t, model.OptionAll, NextOption(nil, "Movies"))
}

func TestNewTitleCollator_FallsBackToEnglish(t *testing.T) {
	collator := NewTitleCollator("not a tag!")
	assert.Equal(t, "en", collator.Language().String())
	assert.Negative(t, collator.Compare("Alpha", "Zeta"))
	assert.Zero(t, collator.Compare("Alpha", "Alpha"))
}
