package memory

import (
	"context"

	"inventory-tracker/internal/inventory"
	repo "inventory-tracker/internal/inventory/repository"
)

// CreateItem stores a new Item. The id must not collide with an existing one
// ignoring case.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := canonical(opt.ID)
	if _, exists := r.items[key]; exists {
		r.l.Errorf(ctx, "memory.CreateItem: id %q already present", opt.ID)
		return inventory.Item{}, repo.ErrFailedToInsert
	}

	item := inventory.Item{
		ID:            opt.ID,
		Name:          opt.Name,
		Category:      opt.Category,
		CurrentStock:  opt.CurrentStock,
		MinStock:      opt.MinStock,
		ManagerEmail:  opt.ManagerEmail,
		UnitOfMeasure: opt.UnitOfMeasure,
		Description:   opt.Description,
		Status:        opt.Status,
		LastModified:  opt.LastModified,
	}
	r.items[key] = item
	r.order = append(r.order, key)
	return item, nil
}

// GetOneItem retrieves a single Item by id. Returns the zero Item (ID == "")
// when not found — not-found is not an error at this layer.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[canonical(opt.ID)]
	if !ok {
		return inventory.Item{}, nil
	}
	if !opt.FoldCase && item.ID != opt.ID {
		return inventory.Item{}, nil
	}
	return item, nil
}

// ListItems returns all items in insertion order.
func (r *implRepository) ListItems(ctx context.Context) ([]inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]inventory.Item, 0, len(r.order))
	for _, key := range r.order {
		items = append(items, r.items[key])
	}
	return items, nil
}

// UpdateItem replaces the mutable fields of the Item with the given exact id.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := canonical(opt.ID)
	item, ok := r.items[key]
	if !ok || item.ID != opt.ID {
		return inventory.Item{}, nil
	}

	item.Name = opt.Name
	item.Category = opt.Category
	item.CurrentStock = opt.CurrentStock
	item.MinStock = opt.MinStock
	item.ManagerEmail = opt.ManagerEmail
	item.UnitOfMeasure = opt.UnitOfMeasure
	item.Description = opt.Description
	item.Status = opt.Status
	item.LastModified = opt.LastModified

	r.items[key] = item
	return item, nil
}
