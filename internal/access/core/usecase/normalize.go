package usecase

import (
	"game-analytics-service/internal/access/core/domain"
	"game-analytics-service/internal/pipeline"
)

// gameKeys covers the game list shapes: plain ids, {gameId, name} objects
// and an {id: name} mapping.
var gameKeys = pipeline.OptionKeys{
	Value: []string{"gameId", "id", "code", "key", "value"},
	Label: []string{"name", "gameName", "title", "displayName"},
}

func normalizeGames(v pipeline.Value) []pipeline.Option {
	return pipeline.NormalizeOptions(v, gameKeys)
}

// normalizeUsers accepts bare usernames or {username, gameIds} objects.
// Entries without a username are dropped.
func normalizeUsers(v pipeline.Value) []domain.User {
	users := []domain.User{}
	if v.Kind() != pipeline.KindArray {
		return users
	}
	for _, item := range v.Items() {
		switch item.Kind() {
		case pipeline.KindString:
			if name := item.Text(); name != "" {
				users = append(users, domain.User{ID: name, Username: name, GameIDs: []string{}})
			}
		case pipeline.KindObject:
			name, ok := item.Field("username")
			if !ok || name.Text() == "" {
				continue
			}
			games, _ := item.Field("gameIds")
			users = append(users, domain.User{
				ID:       name.Text(),
				Username: name.Text(),
				GameIDs:  gameIDs(games),
			})
		}
	}
	return users
}

func gameIDs(v pipeline.Value) []string {
	ids := []string{}
	for _, g := range v.Items() {
		var id string
		switch g.Kind() {
		case pipeline.KindString, pipeline.KindNumber:
			id = g.Text()
		case pipeline.KindObject:
			raw, _ := g.Field("gameId")
			id = raw.Text()
		}
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
