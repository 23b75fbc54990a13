package recipe

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/log"
	"github.com/matt-dz/foodgram/internal/user"
	"go.uber.org/mock/gomock"
)

var gifURI = "data:image/gif;base64," + base64.StdEncoding.EncodeToString([]byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;"))

type memFileStore struct {
	files map[string][]byte
	next  int
}

func newMemFileStore() *memFileStore {
	return &memFileStore{files: make(map[string][]byte)}
}

func (m *memFileStore) write(dir, suffix string, data []byte) (string, int, error) {
	m.next++
	key := fmt.Sprintf("/files/%s/%d%s", dir, m.next, suffix)
	m.files[key] = data
	return key, len(data), nil
}

func (m *memFileStore) WriteRecipeImage(_ context.Context, suffix string, data []byte) (string, int, error) {
	return m.write("recipes/images", suffix, data)
}

func (m *memFileStore) WriteAvatarImage(_ context.Context, suffix string, data []byte) (string, int, error) {
	return m.write("users/avatars", suffix, data)
}

func (m *memFileStore) DeleteKey(_ context.Context, key string) error {
	if _, ok := m.files[key]; !ok {
		return errors.New("no such key")
	}
	delete(m.files, key)
	return nil
}

func (m *memFileStore) FileURL(key string) string {
	return "http://localhost:8080" + key
}

func newTestEnv(t *testing.T) (*env.Env, *database.MockStore, *memFileStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := database.NewMockStore(ctrl)
	files := newMemFileStore()
	return &env.Env{
		Logger:    log.NullLogger(),
		Database:  store,
		FileStore: files,
	}, store, files
}

func validPayload() Payload {
	return Payload{
		Name:        "Pancakes",
		Text:        "Mix and fry.",
		CookingTime: 20,
		Image:       gifURI,
		Tags:        []int64{1, 2},
		Ingredients: []IngredientAmount{{ID: 5, Amount: 200}, {ID: 6, Amount: 2}},
	}
}

func expectReplace(q *database.MockQuerier, recipeID int64, p Payload) {
	ingredientIDs := make([]int64, 0, len(p.Ingredients))
	rows := make([]database.CreateRecipeIngredientsParams, 0, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		ingredientIDs = append(ingredientIDs, ing.ID)
		rows = append(rows, database.CreateRecipeIngredientsParams{
			RecipeID: recipeID, IngredientID: ing.ID, Amount: ing.Amount,
		})
	}
	gomock.InOrder(
		q.EXPECT().GetExistingTagIDs(gomock.Any(), p.Tags).Return(p.Tags, nil),
		q.EXPECT().GetExistingIngredientIDs(gomock.Any(), ingredientIDs).Return(ingredientIDs, nil),
		q.EXPECT().DeleteRecipeTags(gomock.Any(), recipeID).Return(nil),
		q.EXPECT().AddRecipeTags(gomock.Any(), database.AddRecipeTagsParams{RecipeID: recipeID, TagIds: p.Tags}).Return(nil),
		q.EXPECT().DeleteRecipeIngredients(gomock.Any(), recipeID).Return(nil),
		q.EXPECT().CreateRecipeIngredients(gomock.Any(), rows).Return(int64(len(rows)), nil),
	)
}

func expectRead(q *database.MockQuerier, row database.GetRecipeRow, viewerID int64, p Payload) {
	q.EXPECT().
		GetRecipe(gomock.Any(), database.GetRecipeParams{ID: row.ID, ViewerID: viewerID}).
		Return(row, nil)

	tags := make([]database.ListTagsForRecipesRow, 0, len(p.Tags))
	for _, id := range p.Tags {
		tags = append(tags, database.ListTagsForRecipesRow{RecipeID: row.ID, ID: id, Name: fmt.Sprint("tag", id), Slug: fmt.Sprint("tag", id)})
	}
	q.EXPECT().ListTagsForRecipes(gomock.Any(), []int64{row.ID}).Return(tags, nil)

	ingredients := make([]database.ListIngredientsForRecipesRow, 0, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		ingredients = append(ingredients, database.ListIngredientsForRecipesRow{
			RecipeID: row.ID, ID: ing.ID, Name: fmt.Sprint("ingredient", ing.ID), MeasurementUnit: "g", Amount: ing.Amount,
		})
	}
	q.EXPECT().ListIngredientsForRecipes(gomock.Any(), []int64{row.ID}).Return(ingredients, nil)
}

func TestPayloadValidate(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*Payload)
		requireImage bool
		wantField    string
		wantContains string
	}{
		{
			name:   "valid",
			mutate: func(*Payload) {},
		},
		{
			name:      "empty tags reported first",
			mutate:    func(p *Payload) { p.Tags = nil; p.Ingredients = nil; p.CookingTime = 0 },
			wantField: "tags",
		},
		{
			name:      "empty ingredients",
			mutate:    func(p *Payload) { p.Ingredients = []IngredientAmount{}; p.CookingTime = 0 },
			wantField: "ingredients",
		},
		{
			name: "duplicate ingredients before duplicate tags",
			mutate: func(p *Payload) {
				p.Tags = []int64{1, 1}
				p.Ingredients = []IngredientAmount{{ID: 5, Amount: 1}, {ID: 5, Amount: 2}}
			},
			wantField:    "ingredients",
			wantContains: "5",
		},
		{
			name:         "duplicate tags",
			mutate:       func(p *Payload) { p.Tags = []int64{3, 4, 3} },
			wantField:    "tags",
			wantContains: "3",
		},
		{
			name:      "cooking time below minimum",
			mutate:    func(p *Payload) { p.CookingTime = 0; p.Ingredients[0].Amount = 0 },
			wantField: "cooking_time",
		},
		{
			name:      "amount below minimum",
			mutate:    func(p *Payload) { p.Ingredients[1].Amount = 0 },
			wantField: "ingredients",
		},
		{
			name:         "image required on create",
			mutate:       func(p *Payload) { p.Image = "" },
			requireImage: true,
			wantField:    "image",
		},
		{
			name:   "image optional on update",
			mutate: func(p *Payload) { p.Image = "" },
		},
		{
			name:      "name required",
			mutate:    func(p *Payload) { p.Name = "" },
			wantField: "name",
		},
		{
			name:      "name too long",
			mutate:    func(p *Payload) { p.Name = strings.Repeat("a", MaxNameLength+1) },
			wantField: "name",
		},
		{
			name:      "text required",
			mutate:    func(p *Payload) { p.Text = "" },
			wantField: "text",
		},
		{
			name:      "blank name",
			mutate:    func(p *Payload) { p.Name = "   " },
			wantField: "name",
		},
		{
			name:      "blank text",
			mutate:    func(p *Payload) { p.Text = "\t\n " },
			wantField: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(&p)

			err := p.Validate(tt.requireImage)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if len(verr.Fields) != 1 {
				t.Errorf("expected exactly one failing field, got %v", verr.Fields)
			}
			msgs, ok := verr.Fields[tt.wantField]
			if !ok {
				t.Fatalf("expected field %q, got %v", tt.wantField, verr.Fields)
			}
			if tt.wantContains != "" && !strings.Contains(strings.Join(msgs, " "), tt.wantContains) {
				t.Errorf("messages %v should mention %q", msgs, tt.wantContains)
			}
		})
	}
}

func TestPayloadValidate_TrimsWhitespace(t *testing.T) {
	p := validPayload()
	p.Name = "  Pancakes\n"
	p.Text = "\tMix and fry. "

	if err := p.Validate(false); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if p.Name != "Pancakes" || p.Text != "Mix and fry." {
		t.Errorf("payload not trimmed: name %q, text %q", p.Name, p.Text)
	}
}

func TestCreate_ExactSets(t *testing.T) {
	e, store, files := newTestEnv(t)
	p := validPayload()

	store.EXPECT().
		CreateRecipe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg database.CreateRecipeParams) (int64, error) {
			if arg.AuthorID != 7 || arg.Name != p.Name || arg.CookingTime != p.CookingTime {
				t.Errorf("unexpected CreateRecipe params %+v", arg)
			}
			if _, ok := files.files[arg.Image]; !ok {
				t.Errorf("image key %q was not stored before insert", arg.Image)
			}
			return 10, nil
		})
	expectReplace(store.MockQuerier, 10, p)
	expectRead(store.MockQuerier, database.GetRecipeRow{
		ID: 10, AuthorID: 7, Name: p.Name, Image: "/files/recipes/images/1.gif",
		Text: p.Text, CookingTime: p.CookingTime, AuthorUsername: "alice",
	}, 7, p)

	got, err := Create(t.Context(), e, 7, p)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if store.Commits != 1 || store.Rollbacks != 0 {
		t.Errorf("commits = %d, rollbacks = %d", store.Commits, store.Rollbacks)
	}
	if len(got.Tags) != 2 || got.Tags[0].ID != 1 || got.Tags[1].ID != 2 {
		t.Errorf("tags = %+v, want ids [1 2]", got.Tags)
	}
	if len(got.Ingredients) != 2 || got.Ingredients[0].Amount != 200 || got.Ingredients[1].Amount != 2 {
		t.Errorf("ingredients = %+v", got.Ingredients)
	}
	if got.Image != "http://localhost:8080/files/recipes/images/1.gif" {
		t.Errorf("image = %q, want public URL", got.Image)
	}
	if got.Author.Username != "alice" {
		t.Errorf("author = %+v", got.Author)
	}
}

func TestCreate_UnknownTagRollsBack(t *testing.T) {
	e, store, files := newTestEnv(t)
	p := validPayload()

	store.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).Return(int64(10), nil)
	store.EXPECT().GetExistingTagIDs(gomock.Any(), []int64{1, 2}).Return([]int64{1}, nil)

	_, err := Create(t.Context(), e, 7, p)

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Create() error = %v, want *NotFoundError", err)
	}
	if nf.Resource != "tag" || len(nf.IDs) != 1 || nf.IDs[0] != 2 {
		t.Errorf("NotFoundError = %+v", nf)
	}
	if store.Rollbacks != 1 || store.Commits != 0 {
		t.Errorf("commits = %d, rollbacks = %d", store.Commits, store.Rollbacks)
	}
	if len(files.files) != 0 {
		t.Errorf("stored image should be removed after rollback, have %v", files.files)
	}
}

func TestCreate_DuplicateIngredientsPersistNothing(t *testing.T) {
	e, store, files := newTestEnv(t)
	p := validPayload()
	p.Ingredients = []IngredientAmount{{ID: 5, Amount: 1}, {ID: 5, Amount: 3}}

	_, err := Create(t.Context(), e, 7, p)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create() error = %v, want *ValidationError", err)
	}
	if store.Commits != 0 || store.Rollbacks != 0 {
		t.Errorf("no transaction expected, commits = %d, rollbacks = %d", store.Commits, store.Rollbacks)
	}
	if len(files.files) != 0 {
		t.Errorf("no image expected, have %v", files.files)
	}
}

func TestCreate_ConstraintViolation(t *testing.T) {
	e, store, files := newTestEnv(t)
	p := validPayload()

	store.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).Return(int64(10), nil)
	store.EXPECT().GetExistingTagIDs(gomock.Any(), gomock.Any()).Return(p.Tags, nil)
	store.EXPECT().GetExistingIngredientIDs(gomock.Any(), gomock.Any()).Return([]int64{5, 6}, nil)
	store.EXPECT().DeleteRecipeTags(gomock.Any(), int64(10)).Return(nil)
	store.EXPECT().AddRecipeTags(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().DeleteRecipeIngredients(gomock.Any(), int64(10)).Return(nil)
	store.EXPECT().CreateRecipeIngredients(gomock.Any(), gomock.Any()).
		Return(int64(0), &pgconn.PgError{Code: database.UniqueViolation, ConstraintName: "unique_recipe_ingredient"})

	_, err := Create(t.Context(), e, 7, p)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Create() error = %v, want ErrConflict", err)
	}
	if store.Rollbacks != 1 {
		t.Errorf("rollbacks = %d, want 1", store.Rollbacks)
	}
	if len(files.files) != 0 {
		t.Errorf("stored image should be removed, have %v", files.files)
	}
}

func TestUpdate_ReplacesSets(t *testing.T) {
	e, store, files := newTestEnv(t)
	oldKey, _, _ := files.WriteRecipeImage(t.Context(), ".gif", []byte("old"))

	p := validPayload()
	p.Tags = []int64{3}
	p.Ingredients = []IngredientAmount{{ID: 9, Amount: 1}}

	store.EXPECT().GetRecipeOwner(gomock.Any(), int64(10)).
		Return(database.GetRecipeOwnerRow{AuthorID: 7, Image: oldKey}, nil)
	store.EXPECT().UpdateRecipe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg database.UpdateRecipeParams) error {
			if !arg.Image.Valid || arg.Image.String == oldKey {
				t.Errorf("expected a new image key, got %+v", arg.Image)
			}
			return nil
		})
	expectReplace(store.MockQuerier, 10, p)
	expectRead(store.MockQuerier, database.GetRecipeRow{ID: 10, AuthorID: 7, Image: "/files/recipes/images/2.gif"}, 7, p)

	got, err := Update(t.Context(), e, 7, 10, p)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(got.Tags) != 1 || got.Tags[0].ID != 3 {
		t.Errorf("tags = %+v, want only 3", got.Tags)
	}
	if len(got.Ingredients) != 1 || got.Ingredients[0].ID != 9 {
		t.Errorf("ingredients = %+v, want only 9", got.Ingredients)
	}
	if _, ok := files.files[oldKey]; ok {
		t.Error("old image should be removed after a replaced image commits")
	}
	if len(files.files) != 1 {
		t.Errorf("expected only the new image, have %v", files.files)
	}
}

func TestUpdate_KeepsCurrentImage(t *testing.T) {
	tests := []struct {
		name  string
		image func(key string) string
	}{
		{name: "absent", image: func(string) string { return "" }},
		{name: "same key", image: func(key string) string { return key }},
		{name: "same url", image: func(key string) string { return "http://localhost:8080" + key }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, store, files := newTestEnv(t)
			key, _, _ := files.WriteRecipeImage(t.Context(), ".gif", []byte("old"))
			p := validPayload()
			p.Image = tt.image(key)

			store.EXPECT().GetRecipeOwner(gomock.Any(), int64(10)).
				Return(database.GetRecipeOwnerRow{AuthorID: 7, Image: key}, nil)
			store.EXPECT().UpdateRecipe(gomock.Any(), database.UpdateRecipeParams{
				ID:          10,
				Name:        p.Name,
				Image:       pgtype.Text{},
				Text:        p.Text,
				CookingTime: p.CookingTime,
			}).Return(nil)
			expectReplace(store.MockQuerier, 10, p)
			expectRead(store.MockQuerier, database.GetRecipeRow{ID: 10, AuthorID: 7, Image: key}, 7, p)

			if _, err := Update(t.Context(), e, 7, 10, p); err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if _, ok := files.files[key]; !ok {
				t.Error("current image should be kept")
			}
		})
	}
}

func TestUpdate_EmptyTagsLeavesRecipeUnchanged(t *testing.T) {
	e, store, _ := newTestEnv(t)
	p := validPayload()
	p.Tags = []int64{}

	store.EXPECT().GetRecipeOwner(gomock.Any(), int64(10)).
		Return(database.GetRecipeOwnerRow{AuthorID: 7, Image: "/files/recipes/images/x.gif"}, nil)

	_, err := Update(t.Context(), e, 7, 10, p)

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Fields["tags"] == nil {
		t.Fatalf("Update() error = %v, want tags validation error", err)
	}
	if store.Commits != 0 || store.Rollbacks != 0 {
		t.Errorf("no transaction expected, commits = %d, rollbacks = %d", store.Commits, store.Rollbacks)
	}
}

func TestUpdateAndDelete_Authorization(t *testing.T) {
	tests := []struct {
		name     string
		ownerErr error
		authorID int64
		wantErr  error
	}{
		{name: "not the author", authorID: 8, wantErr: ErrNotAuthor},
		{name: "unknown recipe", ownerErr: pgx.ErrNoRows, wantErr: ErrRecipeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, store, _ := newTestEnv(t)
			store.EXPECT().GetRecipeOwner(gomock.Any(), int64(10)).
				Return(database.GetRecipeOwnerRow{AuthorID: tt.authorID}, tt.ownerErr).Times(2)

			if _, err := Update(t.Context(), e, 7, 10, validPayload()); !errors.Is(err, tt.wantErr) {
				t.Errorf("Update() error = %v, want %v", err, tt.wantErr)
			}
			if err := Delete(t.Context(), e, 7, 10); !errors.Is(err, tt.wantErr) {
				t.Errorf("Delete() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	e, store, files := newTestEnv(t)
	key, _, _ := files.WriteRecipeImage(t.Context(), ".gif", []byte("img"))

	store.EXPECT().GetRecipeOwner(gomock.Any(), int64(10)).
		Return(database.GetRecipeOwnerRow{AuthorID: 7, Image: key}, nil)
	store.EXPECT().DeleteRecipe(gomock.Any(), int64(10)).Return(nil)

	if err := Delete(t.Context(), e, 7, 10); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(files.files) != 0 {
		t.Errorf("image should be removed, have %v", files.files)
	}
}

func TestGet_AnonymousFlagsFalse(t *testing.T) {
	e, store, _ := newTestEnv(t)
	row := database.GetRecipeRow{
		ID: 10, AuthorID: 7, AuthorIsSubscribed: true, IsFavorited: true, IsInShoppingCart: true,
	}
	expectRead(store.MockQuerier, row, 0, Payload{})

	got, err := Get(t.Context(), e, 10, user.Anonymous())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.IsFavorited || got.IsInShoppingCart || got.Author.IsSubscribed {
		t.Errorf("anonymous viewer sees flags: %+v", got)
	}
	if got.Tags == nil || got.Ingredients == nil {
		t.Error("empty associations should encode as arrays")
	}
}

func TestGet_NotFound(t *testing.T) {
	e, store, _ := newTestEnv(t)
	store.EXPECT().GetRecipe(gomock.Any(), gomock.Any()).Return(database.GetRecipeRow{}, pgx.ErrNoRows)

	if _, err := Get(t.Context(), e, 10, user.NewViewer(1)); !errors.Is(err, ErrRecipeNotFound) {
		t.Errorf("Get() error = %v, want ErrRecipeNotFound", err)
	}
}

func TestList_FiltersForViewer(t *testing.T) {
	yes := true
	author := int64(7)

	tests := []struct {
		name     string
		viewer   user.Viewer
		wantFlag pgtype.Bool
	}{
		{name: "anonymous ignores relation filters", viewer: user.Anonymous(), wantFlag: pgtype.Bool{}},
		{name: "authenticated applies relation filters", viewer: user.NewViewer(3), wantFlag: pgtype.Bool{Bool: true, Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, store, _ := newTestEnv(t)
			filter := Filter{AuthorID: &author, TagSlugs: []string{"breakfast"}, IsFavorited: &yes, IsInShoppingCart: &yes}

			store.EXPECT().CountRecipes(gomock.Any(), database.CountRecipesParams{
				ViewerID:         tt.viewer.QueryID(),
				AuthorID:         pgtype.Int8{Int64: 7, Valid: true},
				TagSlugs:         []string{"breakfast"},
				IsFavorited:      tt.wantFlag,
				IsInShoppingCart: tt.wantFlag,
			}).Return(int64(1), nil)
			store.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, arg database.ListRecipesParams) ([]database.ListRecipesRow, error) {
					if arg.Limit != 6 || arg.Offset != 12 || arg.IsFavorited != tt.wantFlag {
						t.Errorf("unexpected ListRecipes params %+v", arg)
					}
					return []database.ListRecipesRow{{ID: 10, AuthorID: 7, IsFavorited: true}}, nil
				})
			store.EXPECT().ListTagsForRecipes(gomock.Any(), []int64{10}).Return(nil, nil)
			store.EXPECT().ListIngredientsForRecipes(gomock.Any(), []int64{10}).Return(nil, nil)

			recipes, count, err := List(t.Context(), e, tt.viewer, filter, 6, 12)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if count != 1 || len(recipes) != 1 {
				t.Fatalf("List() = %d recipes, count %d", len(recipes), count)
			}
			if recipes[0].IsFavorited != tt.viewer.Authenticated {
				t.Errorf("IsFavorited = %v for viewer %+v", recipes[0].IsFavorited, tt.viewer)
			}
		})
	}
}

func TestMapWriteError(t *testing.T) {
	plain := errors.New("boom")

	tests := []struct {
		name  string
		err   error
		check func(*testing.T, error)
	}{
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: database.UniqueViolation, ConstraintName: "unique_recipe_ingredient"},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrConflict) {
					t.Errorf("got %v, want ErrConflict", err)
				}
			},
		},
		{
			name: "recipe foreign key",
			err:  fmt.Errorf("adding recipe tags: %w", &pgconn.PgError{Code: database.ForeignKeyViolation, ConstraintName: "recipe_tags_recipe_id_fkey"}),
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrRecipeNotFound) {
					t.Errorf("got %v, want ErrRecipeNotFound", err)
				}
			},
		},
		{
			name: "ingredient foreign key",
			err:  &pgconn.PgError{Code: database.ForeignKeyViolation, ConstraintName: "recipe_ingredients_ingredient_id_fkey"},
			check: func(t *testing.T, err error) {
				var nf *NotFoundError
				if !errors.As(err, &nf) || nf.Resource != "ingredient" {
					t.Errorf("got %v, want ingredient NotFoundError", err)
				}
			},
		},
		{
			name: "check violation",
			err:  &pgconn.PgError{Code: database.CheckViolation, ConstraintName: "recipes_cooking_time_check"},
			check: func(t *testing.T, err error) {
				var verr *ValidationError
				if !errors.As(err, &verr) || verr.Fields["cooking_time"] == nil {
					t.Errorf("got %v, want cooking_time ValidationError", err)
				}
			},
		},
		{
			name: "other errors pass through",
			err:  plain,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, plain) {
					t.Errorf("got %v, want original error", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, mapWriteError(tt.err))
		})
	}
}
