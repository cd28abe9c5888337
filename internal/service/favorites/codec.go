package favorites

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/Taichi-iskw/tv-guide/internal/model"
)

// Encode serializes the whole set as a JSON array. Numeric ids are written as
// JSON numbers and the rest as strings, in the order of FavoriteSet.IDs.
func Encode(set model.FavoriteSet) (string, error) {
	ids := set.IDs()
	items := make([]json.RawMessage, 0, len(ids))
	for _, id := range ids {
		if isCanonicalInt(id) {
			items = append(items, json.RawMessage(id))
			continue
		}
		quoted, err := json.Marshal(string(id))
		if err != nil {
			return "", err
		}
		items = append(items, quoted)
	}

	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses a JSON array of ids (strings or numbers). An empty value or
// JSON null decodes to an empty set.
func Decode(value string) (model.FavoriteSet, error) {
	data := bytes.TrimSpace([]byte(value))
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return model.NewFavoriteSet(), nil
	}

	var ids []model.ChannelID
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	return model.NewFavoriteSet(ids...), nil
}

func isCanonicalInt(id model.ChannelID) bool {
	n, err := strconv.ParseInt(string(id), 10, 64)
	return err == nil && strconv.FormatInt(n, 10) == string(id)
}
