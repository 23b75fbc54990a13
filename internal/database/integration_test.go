//go:build integration

package database

import (
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Run with:
//
//	go test -tags integration ./internal/database/...

const postgresImage = "postgres:17-alpine"

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "foodgram",
				"POSTGRES_PASSWORD": "foodgram",
				"POSTGRES_DB":       "foodgram",
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("skipping: could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminating postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://foodgram:foodgram@%s:%s/foodgram?sslmode=disable", host, port.Port())
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connecting to postgres: %v", err)
	}
	t.Cleanup(pool.Close)

	db := NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	return db
}

type fixture struct {
	alice, bob int64
	r1, r2, r3 int64
}

// seed creates two authors and three recipes, oldest first:
// r1 (alice, breakfast), r2 (alice, dinner), r3 (bob, breakfast and dinner).
// Bob favorites r1 and has r2 in his cart.
func seed(t *testing.T, ctx context.Context, db *Database) fixture {
	t.Helper()
	var f fixture
	var err error

	newUser := func(name string) int64 {
		id, err := db.CreateUser(ctx, CreateUserParams{
			Email:        name + "@example.com",
			Username:     name,
			FirstName:    name,
			LastName:     "Tester",
			PasswordHash: "hash",
		})
		if err != nil {
			t.Fatalf("CreateUser(%s) error = %v", name, err)
		}
		return id
	}
	f.alice = newUser("alice")
	f.bob = newUser("bob")

	breakfast, err := db.CreateTag(ctx, CreateTagParams{Name: "Breakfast", Slug: "breakfast"})
	if err != nil {
		t.Fatalf("CreateTag() error = %v", err)
	}
	dinner, err := db.CreateTag(ctx, CreateTagParams{Name: "Dinner", Slug: "dinner"})
	if err != nil {
		t.Fatalf("CreateTag() error = %v", err)
	}
	flour, err := db.CreateIngredient(ctx, CreateIngredientParams{Name: "flour", MeasurementUnit: "g"})
	if err != nil {
		t.Fatalf("CreateIngredient() error = %v", err)
	}

	newRecipe := func(author int64, name string, tags ...int64) int64 {
		id, err := db.CreateRecipe(ctx, CreateRecipeParams{
			AuthorID:    author,
			Name:        name,
			Image:       "recipes/images/" + name + ".png",
			Text:        "Cook it.",
			CookingTime: 10,
		})
		if err != nil {
			t.Fatalf("CreateRecipe(%s) error = %v", name, err)
		}
		if err := db.AddRecipeTags(ctx, AddRecipeTagsParams{RecipeID: id, TagIds: tags}); err != nil {
			t.Fatalf("AddRecipeTags(%s) error = %v", name, err)
		}
		if _, err := db.CreateRecipeIngredients(ctx, []CreateRecipeIngredientsParams{
			{RecipeID: id, IngredientID: flour.ID, Amount: 100},
		}); err != nil {
			t.Fatalf("CreateRecipeIngredients(%s) error = %v", name, err)
		}
		return id
	}
	f.r1 = newRecipe(f.alice, "pancakes", breakfast.ID)
	f.r2 = newRecipe(f.alice, "stew", dinner.ID)
	f.r3 = newRecipe(f.bob, "omelette", breakfast.ID, dinner.ID)

	if err = db.CreateFavorite(ctx, CreateFavoriteParams{UserID: f.bob, RecipeID: f.r1}); err != nil {
		t.Fatalf("CreateFavorite() error = %v", err)
	}
	if err = db.CreateCartItem(ctx, CreateCartItemParams{UserID: f.bob, RecipeID: f.r2}); err != nil {
		t.Fatalf("CreateCartItem() error = %v", err)
	}
	return f
}

func TestIntegration_ListRecipesFilters(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	f := seed(t, ctx, db)

	yes := pgtype.Bool{Bool: true, Valid: true}
	no := pgtype.Bool{Bool: false, Valid: true}

	tests := []struct {
		name   string
		params ListRecipesParams
		want   []int64
	}{
		{
			name:   "no filters newest first",
			params: ListRecipesParams{},
			want:   []int64{f.r3, f.r2, f.r1},
		},
		{
			name:   "author",
			params: ListRecipesParams{AuthorID: pgtype.Int8{Int64: f.alice, Valid: true}},
			want:   []int64{f.r2, f.r1},
		},
		{
			name:   "single tag",
			params: ListRecipesParams{TagSlugs: []string{"breakfast"}},
			want:   []int64{f.r3, f.r1},
		},
		{
			name:   "any of several tags without duplicates",
			params: ListRecipesParams{TagSlugs: []string{"breakfast", "dinner"}},
			want:   []int64{f.r3, f.r2, f.r1},
		},
		{
			name:   "unknown tag",
			params: ListRecipesParams{TagSlugs: []string{"dessert"}},
			want:   nil,
		},
		{
			name:   "favorited",
			params: ListRecipesParams{ViewerID: f.bob, IsFavorited: yes},
			want:   []int64{f.r1},
		},
		{
			name:   "not favorited",
			params: ListRecipesParams{ViewerID: f.bob, IsFavorited: no},
			want:   []int64{f.r3, f.r2},
		},
		{
			name:   "in shopping cart",
			params: ListRecipesParams{ViewerID: f.bob, IsInShoppingCart: yes},
			want:   []int64{f.r2},
		},
		{
			name:   "anonymous viewer has no favorites",
			params: ListRecipesParams{IsFavorited: yes},
			want:   nil,
		},
		{
			name: "filters combine",
			params: ListRecipesParams{
				ViewerID:    f.bob,
				AuthorID:    pgtype.Int8{Int64: f.alice, Valid: true},
				TagSlugs:    []string{"breakfast"},
				IsFavorited: yes,
			},
			want: []int64{f.r1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.params
			params.Limit = 10
			rows, err := db.ListRecipes(ctx, params)
			if err != nil {
				t.Fatalf("ListRecipes() error = %v", err)
			}
			var got []int64
			for _, row := range rows {
				got = append(got, row.ID)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ListRecipes() ids = %v, want %v", got, tt.want)
			}

			count, err := db.CountRecipes(ctx, CountRecipesParams{
				ViewerID:         params.ViewerID,
				AuthorID:         params.AuthorID,
				TagSlugs:         params.TagSlugs,
				IsFavorited:      params.IsFavorited,
				IsInShoppingCart: params.IsInShoppingCart,
			})
			if err != nil {
				t.Fatalf("CountRecipes() error = %v", err)
			}
			if count != int64(len(tt.want)) {
				t.Errorf("CountRecipes() = %d, want %d", count, len(tt.want))
			}
		})
	}

	t.Run("relation flags for viewer", func(t *testing.T) {
		rows, err := db.ListRecipes(ctx, ListRecipesParams{ViewerID: f.bob, Limit: 10})
		if err != nil {
			t.Fatalf("ListRecipes() error = %v", err)
		}
		for _, row := range rows {
			if row.IsFavorited != (row.ID == f.r1) {
				t.Errorf("recipe %d is_favorited = %v", row.ID, row.IsFavorited)
			}
			if row.IsInShoppingCart != (row.ID == f.r2) {
				t.Errorf("recipe %d is_in_shopping_cart = %v", row.ID, row.IsInShoppingCart)
			}
		}
	})

	t.Run("pagination", func(t *testing.T) {
		rows, err := db.ListRecipes(ctx, ListRecipesParams{Limit: 1, Offset: 1})
		if err != nil {
			t.Fatalf("ListRecipes() error = %v", err)
		}
		if len(rows) != 1 || rows[0].ID != f.r2 {
			t.Errorf("second page = %+v, want recipe %d", rows, f.r2)
		}
	})
}

func TestIntegration_ListAuthorsRecipesLimit(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	f := seed(t, ctx, db)

	tests := []struct {
		name  string
		limit pgtype.Int4
		want  []int64
	}{
		{name: "unlimited", want: []int64{f.r2, f.r1, f.r3}},
		{name: "one per author", limit: pgtype.Int4{Int32: 1, Valid: true}, want: []int64{f.r2, f.r3}},
		{name: "zero", limit: pgtype.Int4{Int32: 0, Valid: true}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := db.ListAuthorsRecipes(ctx, ListAuthorsRecipesParams{
				AuthorIds:    []int64{f.alice, f.bob},
				RecipesLimit: tt.limit,
			})
			if err != nil {
				t.Fatalf("ListAuthorsRecipes() error = %v", err)
			}
			var got []int64
			for _, row := range rows {
				got = append(got, row.ID)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ListAuthorsRecipes() ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntegration_Constraints(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	f := seed(t, ctx, db)

	err := db.CreateFavorite(ctx, CreateFavoriteParams{UserID: f.bob, RecipeID: f.r1})
	pgErr, ok := PgError(err, UniqueViolation)
	if !ok {
		t.Fatalf("duplicate favorite error = %v, want unique violation", err)
	}
	if pgErr.ConstraintName != "unique_favorite_user_recipe" {
		t.Errorf("constraint = %q", pgErr.ConstraintName)
	}

	err = db.CreateCartItem(ctx, CreateCartItemParams{UserID: f.bob, RecipeID: f.r2})
	if !IsUniqueViolation(err) {
		t.Errorf("duplicate cart item error = %v, want unique violation", err)
	}

	err = db.CreateSubscription(ctx, CreateSubscriptionParams{SubscriberID: f.bob, SubscribedToID: f.bob})
	if _, ok := PgError(err, CheckViolation); !ok {
		t.Errorf("self subscription error = %v, want check violation", err)
	}

	err = db.CreateFavorite(ctx, CreateFavoriteParams{UserID: f.bob, RecipeID: f.r3 + 100})
	if !IsForeignKeyViolation(err) {
		t.Errorf("favorite of missing recipe error = %v, want foreign key violation", err)
	}

	err = db.InTx(ctx, func(q Querier) error {
		if err := q.CreateFavorite(ctx, CreateFavoriteParams{UserID: f.alice, RecipeID: f.r3}); err != nil {
			return err
		}
		return q.CreateFavorite(ctx, CreateFavoriteParams{UserID: f.alice, RecipeID: f.r3})
	})
	if !IsUniqueViolation(err) {
		t.Fatalf("InTx() error = %v, want unique violation", err)
	}
	rows, err := db.ListRecipes(ctx, ListRecipesParams{
		ViewerID:    f.alice,
		IsFavorited: pgtype.Bool{Bool: true, Valid: true},
		Limit:       10,
	})
	if err != nil {
		t.Fatalf("ListRecipes() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rolled back favorite still visible: %+v", rows)
	}
}
