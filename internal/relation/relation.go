// Package relation implements the favorite, shopping cart and subscription
// toggles. Adding an existing pairing and removing a missing one are errors.
package relation

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/metrics"
)

type Kind string

const (
	Favorite     Kind = "favorite"
	ShoppingCart Kind = "shopping_cart"
	Subscription Kind = "subscription"
)

var (
	ErrAlreadyExists    = errors.New("already exists")
	ErrNotFound         = errors.New("does not exist")
	ErrTargetNotFound   = errors.New("target not found")
	ErrSelfSubscription = errors.New("cannot subscribe to yourself")
	ErrUnknownKind      = errors.New("unknown relation kind")
)

// Add pairs actorID with targetID. The unique index decides whether the
// pairing already exists.
func Add(ctx context.Context, q database.Querier, kind Kind, actorID, targetID int64) (err error) {
	defer func() { metrics.RecordRelationToggle(string(kind), "add", err) }()

	switch kind {
	case Favorite:
		err = q.CreateFavorite(ctx, database.CreateFavoriteParams{UserID: actorID, RecipeID: targetID})
	case ShoppingCart:
		err = q.CreateCartItem(ctx, database.CreateCartItemParams{UserID: actorID, RecipeID: targetID})
	case Subscription:
		if actorID == targetID {
			return ErrSelfSubscription
		}
		err = q.CreateSubscription(ctx, database.CreateSubscriptionParams{SubscriberID: actorID, SubscribedToID: targetID})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	switch {
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w", kind, ErrAlreadyExists)
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", kind, ErrTargetNotFound)
	case err != nil:
		return fmt.Errorf("adding %s: %w", kind, err)
	}
	return nil
}

// Remove deletes the pairing of actorID and targetID. When nothing was
// deleted the target is looked up to tell a missing target from a missing
// pairing.
func Remove(ctx context.Context, q database.Querier, kind Kind, actorID, targetID int64) (err error) {
	defer func() { metrics.RecordRelationToggle(string(kind), "remove", err) }()

	var n int64
	switch kind {
	case Favorite:
		n, err = q.DeleteFavorite(ctx, database.DeleteFavoriteParams{UserID: actorID, RecipeID: targetID})
	case ShoppingCart:
		n, err = q.DeleteCartItem(ctx, database.DeleteCartItemParams{UserID: actorID, RecipeID: targetID})
	case Subscription:
		if actorID == targetID {
			return ErrSelfSubscription
		}
		n, err = q.DeleteSubscription(ctx, database.DeleteSubscriptionParams{SubscriberID: actorID, SubscribedToID: targetID})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err != nil {
		return fmt.Errorf("removing %s: %w", kind, err)
	}
	if n > 0 {
		return nil
	}

	exists, err := targetExists(ctx, q, kind, targetID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s: %w", kind, ErrTargetNotFound)
	}
	return fmt.Errorf("%s: %w", kind, ErrNotFound)
}

func targetExists(ctx context.Context, q database.Querier, kind Kind, targetID int64) (bool, error) {
	var (
		exists bool
		err    error
	)
	if kind == Subscription {
		exists, err = q.UserExists(ctx, targetID)
	} else {
		exists, err = q.RecipeExists(ctx, targetID)
	}
	if err != nil {
		return false, fmt.Errorf("checking %s target: %w", kind, err)
	}
	return exists, nil
}
