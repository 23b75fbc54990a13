package relation

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/matt-dz/foodgram/internal/database"
	"go.uber.org/mock/gomock"
)

var (
	uniqueErr = &pgconn.PgError{Code: database.UniqueViolation, ConstraintName: "unique_cart_item_user_recipe"}
	fkErr     = &pgconn.PgError{Code: database.ForeignKeyViolation, ConstraintName: "cart_items_recipe_id_fkey"}
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		actor   int64
		target  int64
		setup   func(q *database.MockQuerier)
		wantErr error
	}{
		{
			name: "favorite", kind: Favorite, actor: 1, target: 10,
			setup: func(q *database.MockQuerier) {
				q.EXPECT().CreateFavorite(gomock.Any(), database.CreateFavoriteParams{UserID: 1, RecipeID: 10}).Return(nil)
			},
		},
		{
			name: "cart", kind: ShoppingCart, actor: 1, target: 10,
			setup: func(q *database.MockQuerier) {
				q.EXPECT().CreateCartItem(gomock.Any(), database.CreateCartItemParams{UserID: 1, RecipeID: 10}).Return(nil)
			},
		},
		{
			name: "subscription", kind: Subscription, actor: 1, target: 2,
			setup: func(q *database.MockQuerier) {
				q.EXPECT().CreateSubscription(gomock.Any(), database.CreateSubscriptionParams{SubscriberID: 1, SubscribedToID: 2}).Return(nil)
			},
		},
		{
			name: "duplicate cart entry", kind: ShoppingCart, actor: 1, target: 10,
			setup: func(q *database.MockQuerier) {
				q.EXPECT().CreateCartItem(gomock.Any(), gomock.Any()).Return(uniqueErr)
			},
			wantErr: ErrAlreadyExists,
		},
		{
			name: "missing recipe", kind: Favorite, actor: 1, target: 99,
			setup: func(q *database.MockQuerier) {
				q.EXPECT().CreateFavorite(gomock.Any(), gomock.Any()).Return(fkErr)
			},
			wantErr: ErrTargetNotFound,
		},
		{
			name: "self subscription touches nothing", kind: Subscription, actor: 4, target: 4,
			setup:   func(*database.MockQuerier) {},
			wantErr: ErrSelfSubscription,
		},
		{
			name: "unknown kind", kind: Kind("bookmark"), actor: 1, target: 2,
			setup:   func(*database.MockQuerier) {},
			wantErr: ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := database.NewMockQuerier(ctrl)
			tt.setup(q)

			err := Add(t.Context(), q, tt.kind, tt.actor, tt.target)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAdd_SecondCartAddConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := database.NewMockQuerier(ctrl)

	gomock.InOrder(
		q.EXPECT().CreateCartItem(gomock.Any(), gomock.Any()).Return(nil),
		q.EXPECT().CreateCartItem(gomock.Any(), gomock.Any()).Return(uniqueErr),
	)

	if err := Add(t.Context(), q, ShoppingCart, 1, 10); err != nil {
		t.Fatalf("first Add() error = %v", err)
	}
	if err := Add(t.Context(), q, ShoppingCart, 1, 10); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("second Add() error = %v, want ErrAlreadyExists", err)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		actor   int64
		target  int64
		setup   func(q *database.MockQuerier)
		wantErr error
	}{
		{
			name: "favorite removed", kind: Favorite, actor: 1, target: 10,
			setup: func(q *database.MockQuerier) {
				q.EXPECT().DeleteFavorite(gomock.Any(), database.DeleteFavoriteParams{UserID: 1, RecipeID: 10}).Return(int64(1), nil)
			},
		},
		{
			name: "subscription removed", kind: Subscription, actor: 1, target: 2,
			setup: func(q *database.MockQuerier) {
				q.EXPECT().DeleteSubscription(gomock.Any(), database.DeleteSubscriptionParams{SubscriberID: 1, SubscribedToID: 2}).Return(int64(1), nil)
			},
		},
		{
			name: "absent cart entry", kind: ShoppingCart, actor: 1, target: 10,
			setup: func(q *database.MockQuerier) {
				q.EXPECT().DeleteCartItem(gomock.Any(), gomock.Any()).Return(int64(0), nil)
				q.EXPECT().RecipeExists(gomock.Any(), int64(10)).Return(true, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "absent recipe", kind: ShoppingCart, actor: 1, target: 99,
			setup: func(q *database.MockQuerier) {
				q.EXPECT().DeleteCartItem(gomock.Any(), gomock.Any()).Return(int64(0), nil)
				q.EXPECT().RecipeExists(gomock.Any(), int64(99)).Return(false, nil)
			},
			wantErr: ErrTargetNotFound,
		},
		{
			name: "absent subscription", kind: Subscription, actor: 1, target: 2,
			setup: func(q *database.MockQuerier) {
				q.EXPECT().DeleteSubscription(gomock.Any(), gomock.Any()).Return(int64(0), nil)
				q.EXPECT().UserExists(gomock.Any(), int64(2)).Return(true, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "self unsubscribe", kind: Subscription, actor: 3, target: 3,
			setup:   func(*database.MockQuerier) {},
			wantErr: ErrSelfSubscription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := database.NewMockQuerier(ctrl)
			tt.setup(q)

			err := Remove(t.Context(), q, tt.kind, tt.actor, tt.target)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Remove() error = %v", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Remove() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
