// Package shoppinglist aggregates the ingredients of the recipes in a user's
// cart into a plain text shopping list.
package shoppinglist

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/matt-dz/foodgram/internal/database"
)

const (
	dateLayout     = "2 January 2006"
	filenameLayout = "02_01_2006"
	separatorWidth = 50
)

// Entry is one ingredient amount of one recipe.
type Entry struct {
	Name            string
	MeasurementUnit string
	Amount          int64
}

// Line is the total amount of one ingredient in one unit.
type Line struct {
	Name            string
	MeasurementUnit string
	Total           int64
}

type RecipeRef struct {
	Name   string
	Author string
}

type List struct {
	Lines   []Line
	Recipes []RecipeRef
}

// Aggregate groups entries by name and unit, sums their amounts and sorts the
// result by name ignoring case, then unit.
func Aggregate(entries []Entry) []Line {
	type key struct{ name, unit string }

	totals := make(map[key]int64, len(entries))
	for _, e := range entries {
		totals[key{e.Name, e.MeasurementUnit}] += e.Amount
	}

	lines := make([]Line, 0, len(totals))
	for k, total := range totals {
		lines = append(lines, Line{Name: k.name, MeasurementUnit: k.unit, Total: total})
	}
	slices.SortFunc(lines, func(a, b Line) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.MeasurementUnit, b.MeasurementUnit),
		)
	})
	return lines
}

// Build loads the cart of userID and aggregates it.
func Build(ctx context.Context, q database.Querier, userID int64) (List, error) {
	rows, err := q.ListCartIngredients(ctx, userID)
	if err != nil {
		return List{}, fmt.Errorf("listing cart ingredients: %w", err)
	}
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			Name:            row.Name,
			MeasurementUnit: row.MeasurementUnit,
			Amount:          int64(row.Amount),
		})
	}

	recipes, err := q.ListCartRecipes(ctx, userID)
	if err != nil {
		return List{}, fmt.Errorf("listing cart recipes: %w", err)
	}
	refs := make([]RecipeRef, 0, len(recipes))
	for _, r := range recipes {
		refs = append(refs, RecipeRef{Name: r.Name, Author: r.AuthorUsername})
	}

	return List{Lines: Aggregate(entries), Recipes: refs}, nil
}

// Render writes the list as text. An empty list still renders every section.
func Render(w io.Writer, date time.Time, list List) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Shopping list for %s:\n", date.Format(dateLayout))
	for i, l := range list.Lines {
		fmt.Fprintf(bw, "%d. %s - %d %s\n", i+1, capitalize(l.Name), l.Total, l.MeasurementUnit)
	}
	fmt.Fprintln(bw, strings.Repeat("=", separatorWidth))
	fmt.Fprintln(bw, "Based on recipes:")
	for i, r := range list.Recipes {
		fmt.Fprintf(bw, "%d. %s (author: %s)\n", i+1, r.Name, r.Author)
	}

	return bw.Flush()
}

// Filename is the attachment name for a list generated on date.
func Filename(date time.Time) string {
	return "shopping_list_" + date.Format(filenameLayout) + ".txt"
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
