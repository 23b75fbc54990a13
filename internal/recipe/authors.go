package recipe

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/user"
)

// Author is a user together with a preview of their recipes, as shown in
// subscription listings.
type Author struct {
	user.Profile
	Recipes      []Short `json:"recipes"`
	RecipesCount int64   `json:"recipes_count"`
}

// GetAuthor returns the author with at most recipesLimit of their recipes. A
// negative recipesLimit means no limit.
func GetAuthor(ctx context.Context, env *env.Env, authorID int64, viewer user.Viewer, recipesLimit int32) (Author, error) {
	profile, err := user.Get(ctx, env.Database, authorID, viewer, urlResolver(env))
	if err != nil {
		return Author{}, err
	}

	count, err := env.Database.CountRecipes(ctx, database.CountRecipesParams{
		ViewerID: viewer.QueryID(),
		AuthorID: pgtype.Int8{Int64: authorID, Valid: true},
	})
	if err != nil {
		return Author{}, fmt.Errorf("counting recipes: %w", err)
	}

	shorts, err := ShortsByAuthor(ctx, env, []int64{authorID}, recipesLimit)
	if err != nil {
		return Author{}, err
	}
	return Author{Profile: profile, Recipes: orEmpty(shorts[authorID]), RecipesCount: count}, nil
}

// Subscriptions lists the authors subscriberID follows, newest subscription
// first.
func Subscriptions(ctx context.Context, env *env.Env, subscriberID int64, recipesLimit, limit, offset int32) ([]Author, int64, error) {
	count, err := env.Database.CountSubscriptions(ctx, subscriberID)
	if err != nil {
		return nil, 0, fmt.Errorf("counting subscriptions: %w", err)
	}
	rows, err := env.Database.ListSubscriptions(ctx, database.ListSubscriptionsParams{
		SubscriberID: subscriberID,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("listing subscriptions: %w", err)
	}
	if len(rows) == 0 {
		return []Author{}, count, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	shorts, err := ShortsByAuthor(ctx, env, ids, recipesLimit)
	if err != nil {
		return nil, 0, err
	}

	urls := urlResolver(env)
	authors := make([]Author, 0, len(rows))
	for _, row := range rows {
		authors = append(authors, Author{
			Profile: user.Profile{
				ID:           row.ID,
				Email:        row.Email,
				Username:     row.Username,
				FirstName:    row.FirstName,
				LastName:     row.LastName,
				IsSubscribed: true,
				Avatar:       user.AvatarURL(row.Avatar, urls),
			},
			Recipes:      orEmpty(shorts[row.ID]),
			RecipesCount: row.RecipesCount,
		})
	}
	return authors, count, nil
}

func orEmpty(s []Short) []Short {
	if s == nil {
		return []Short{}
	}
	return s
}
