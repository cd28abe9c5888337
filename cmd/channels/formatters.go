package channels

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Taichi-iskw/tv-guide/internal/guide"
	"github.com/Taichi-iskw/tv-guide/internal/model"
)

// Formatter defines interface for output formatting
type Formatter interface {
	Format(channels []model.Channel, favorites guide.Membership) (string, error)
}

// TextFormatter formats channels as plain text cards
type TextFormatter struct{}

// Format formats channels as plain text
func (f *TextFormatter) Format(channels []model.Channel, favorites guide.Membership) (string, error) {
	if len(channels) == 0 {
		return guide.NoChannelsText + "\n", nil
	}

	var output strings.Builder
	for i, card := range guide.Cards(channels, favorites) {
		if i > 0 {
			output.WriteString("\n")
		}

		output.WriteString(card.Heading)
		if card.Favorite {
			output.WriteString(" " + guide.FavoriteMarker)
		}
		if card.HD {
			output.WriteString(" [" + model.CapabilityHD + "]")
		}
		output.WriteString("\n")

		if card.Category != "" || card.Language != "" {
			output.WriteString(fmt.Sprintf("  %s / %s\n", card.Category, card.Language))
		}
		output.WriteString("  " + card.OnNow + "\n")
		for _, upcoming := range card.Upcoming {
			output.WriteString("  " + upcoming + "\n")
		}
	}

	return output.String(), nil
}

// JSONFormatter formats channels as JSON
type JSONFormatter struct{}

type channelOutput struct {
	ID        model.ChannelID `json:"id"`
	Title     string          `json:"title"`
	StbNumber string          `json:"stb_number"`
	Category  string          `json:"category"`
	Language  string          `json:"language"`
	ImageURL  string          `json:"image_url,omitempty"`
	HD        bool            `json:"hd"`
	Favorite  bool            `json:"favorite"`
	OnNow     *model.Program  `json:"on_now,omitempty"`
	Upcoming  []model.Program `json:"upcoming,omitempty"`
}

// Format formats channels as a JSON array
func (f *JSONFormatter) Format(channels []model.Channel, favorites guide.Membership) (string, error) {
	output := make([]channelOutput, 0, len(channels))
	for _, ch := range channels {
		item := channelOutput{
			ID:        ch.ID,
			Title:     ch.Title,
			StbNumber: ch.StbNumber,
			Category:  ch.Category,
			Language:  ch.Language,
			ImageURL:  ch.ImageURL,
			HD:        ch.IsHD(),
			Favorite:  favorites != nil && favorites.Contains(ch.ID),
			Upcoming:  ch.Upcoming(guide.UpcomingPerCard),
		}
		if program, ok := ch.OnNow(); ok {
			item.OnNow = &program
		}
		output = append(output, item)
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return string(jsonBytes) + "\n", nil
}

// GetFormatter returns the appropriate formatter based on format string
func GetFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "text", "txt":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
