package league

import "context"

// Repository describes league read needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
}
