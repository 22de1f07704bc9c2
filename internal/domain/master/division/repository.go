package division

import "context"

type DivisionRepository interface {
	Create(ctx context.Context, d Division) (Division, error)
	GetByID(ctx context.Context, id string) (Division, error)
	GetByName(ctx context.Context, name string) (Division, error)
	List(ctx context.Context) ([]Division, error)
	Update(ctx context.Context, req UpdateDivisionRequest) error
	Delete(ctx context.Context, id string) error
}
