package repositories

import "context"

// Crud is the uniform persistence contract shared by every clinic entity.
// List applies page-based limit/offset; Create returns the store-generated
// identifier; Update and Delete report zero matched rows as not-found;
// Search is a case-insensitive substring match on the entity's display column.
type Crud[T any] interface {
	List(ctx context.Context, page int) ([]*T, error)
	Create(ctx context.Context, entity *T) (int64, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Update(ctx context.Context, id int64, entity *T) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, text string) ([]*T, error)
}
