package guide

import (
	"fmt"

	"github.com/Taichi-iskw/tv-guide/internal/model"
)

// Fallback texts shown when the guide has nothing to display
const (
	NoChannelsText       = "No channels available"
	NoCurrentProgramText = "No current program information available"
	NoUpcomingText       = "No upcoming program information"
)

// FavoriteMarker is appended to the heading of favorite channels
const FavoriteMarker = "♥"

// UpcomingPerCard is how many programs after the current one a card lists
const UpcomingPerCard = 2

// Card is the display text of one channel
type Card struct {
	ID       model.ChannelID
	Heading  string
	Category string
	Language string
	HD       bool
	Favorite bool
	OnNow    string
	Upcoming []string
}

// NewCard builds the card for ch
func NewCard(ch model.Channel, favorite bool) Card {
	card := Card{
		ID:       ch.ID,
		Heading:  fmt.Sprintf("CH%s %s", ch.StbNumber, ch.Title),
		Category: ch.Category,
		Language: ch.Language,
		HD:       ch.IsHD(),
		Favorite: favorite,
		OnNow:    NoCurrentProgramText,
	}

	if program, ok := ch.OnNow(); ok {
		card.OnNow = "On Now " + program.Title
	}

	upcoming := ch.Upcoming(UpcomingPerCard)
	if len(upcoming) == 0 {
		card.Upcoming = []string{NoUpcomingText}
		return card
	}
	for _, program := range upcoming {
		card.Upcoming = append(card.Upcoming, FormatProgram(program))
	}
	return card
}

// FormatProgram renders a program as "15:04 Title" in local time. Programs
// without a start time show the title alone.
func FormatProgram(program model.Program) string {
	if program.Datetime.IsZero() {
		return program.Title
	}
	return program.Datetime.Local().Format("15:04") + " " + program.Title
}

// Cards builds the cards of channels, marking members of favorites
func Cards(channels []model.Channel, favorites Membership) []Card {
	cards := make([]Card, 0, len(channels))
	for _, ch := range channels {
		cards = append(cards, NewCard(ch, favorites != nil && favorites.Contains(ch.ID)))
	}
	return cards
}
