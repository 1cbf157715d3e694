package usecase

import (
	"context"

	"inventory-tracker/internal/inventory"
	"inventory-tracker/internal/inventory/ledger"
	repo "inventory-tracker/internal/inventory/repository"
	"inventory-tracker/internal/inventory/view"
)

// List returns the filtered, sorted inventory view.
func (uc *implUseCase) List(ctx context.Context, input inventory.ListItemsInput) (inventory.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return inventory.ListItemsOutput{}, err
	}

	filtered := view.Filter(items, view.FilterOptions{
		Status: input.Status,
		Search: input.Search,
	})
	sorted := view.Sort(filtered, input.SortBy)

	return inventory.ListItemsOutput{Items: sorted, Total: len(sorted)}, nil
}

// Detail returns a single item by id, matched ignoring case.
func (uc *implUseCase) Detail(ctx context.Context, id string) (inventory.DetailItemOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id, FoldCase: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return inventory.DetailItemOutput{}, err
	}
	if item.ID == "" {
		return inventory.DetailItemOutput{}, inventory.ErrNotFound
	}
	return inventory.DetailItemOutput{Item: item}, nil
}

// History returns the filtered, sorted audit log.
func (uc *implUseCase) History(ctx context.Context, input inventory.HistoryInput) (inventory.HistoryOutput, error) {
	entries, err := uc.repo.ListHistory(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListHistory: %v", err)
		return inventory.HistoryOutput{}, err
	}

	result := ledger.Query(entries, ledger.QueryOptions{
		Type:   input.Type,
		From:   input.From,
		To:     input.To,
		Search: input.Search,
		SortBy: input.SortBy,
	})
	return inventory.HistoryOutput{Entries: result, Total: len(result)}, nil
}

// Export writes the current filtered view as CSV. Returns
// inventory.ErrEmptyExport when the view has no rows.
func (uc *implUseCase) Export(ctx context.Context, input inventory.ExportInput) error {
	list, err := uc.List(ctx, input.Filter)
	if err != nil {
		return err
	}
	if err := view.WriteCSV(input.Writer, list.Items); err != nil {
		if err != inventory.ErrEmptyExport {
			uc.l.Errorf(ctx, "uc.Export WriteCSV: %v", err)
		}
		return err
	}
	return nil
}
