package usecase

import "context"

// SheetGrid is one fetched cell range. Header holds the first row's labels;
// Rows carries the remaining rows with unformatted cell values, so numbers
// and date serials stay numeric.
type SheetGrid struct {
	Range  string
	Header []string
	Rows   [][]any
}

// SheetFetcher reads match rows from the spreadsheet service.
type SheetFetcher interface {
	FetchRange(ctx context.Context, readRange string) (SheetGrid, error)
}
